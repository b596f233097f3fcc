package redis

import (
	"errors"
	"testing"
)

func TestNewRedisValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  RedisConfig
		want error
	}{
		{name: "missing host", cfg: RedisConfig{Port: 6379}, want: ErrHostRequired},
		{name: "zero port", cfg: RedisConfig{Host: "localhost"}, want: ErrInvalidPort},
		{name: "port out of range", cfg: RedisConfig{Host: "localhost", Port: 70000}, want: ErrInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRedis(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewRedis() error = %v, want %v", err, tt.want)
			}
		})
	}
}
