package storage

import (
	"encoding/json"
	"fmt"
)

// Codec переводит запись в полезную нагрузку строки resources и обратно
type Codec[T any] interface {
	Encode(rec T) ([]byte, error)
	Decode(data []byte) (T, error)
}

type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(rec T) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("decode payload: %w", err)
	}
	return rec, nil
}

// Sealer шифрует отдельные строковые поля
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(value string) (string, error)
}

// SealedCodec шифрует одно поле записи поверх JSONCodec
type SealedCodec[T any] struct {
	sealer Sealer
	get    func(T) string
	set    func(T, string) T
}

func NewSealedCodec[T any](sealer Sealer, get func(T) string, set func(T, string) T) *SealedCodec[T] {
	return &SealedCodec[T]{sealer: sealer, get: get, set: set}
}

func (c *SealedCodec[T]) Encode(rec T) ([]byte, error) {
	sealed, err := c.sealer.Seal(c.get(rec))
	if err != nil {
		return nil, fmt.Errorf("seal field: %w", err)
	}
	return JSONCodec[T]{}.Encode(c.set(rec, sealed))
}

func (c *SealedCodec[T]) Decode(data []byte) (T, error) {
	rec, err := JSONCodec[T]{}.Decode(data)
	if err != nil {
		return rec, err
	}

	plain, err := c.sealer.Open(c.get(rec))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("open field: %w", err)
	}
	return c.set(rec, plain), nil
}
