package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Config
		expected Config
		wantErr  bool
	}{
		{
			name: "valores vazios recebem padrão",
			input: Config{
				Chart: Chart{Width: 640, Height: 400},
			},
			expected: Config{
				Data:   Data{Source: DataSourceCSV, FilePath: DefaultDataFilePath},
				Chart:  Chart{Width: 640, Height: 400},
				Server: Server{AllowedOrigins: []string{}},
			},
		},
		{
			name: "fonte postgres em maiúsculas",
			input: Config{
				Data:   Data{Source: " POSTGRES ", FilePath: "dados.csv"},
				Chart:  Chart{Width: 800, Height: 600},
				Server: Server{AllowedOrigins: []string{" http://a.com ", "", "http://b.com"}},
			},
			expected: Config{
				Data:   Data{Source: DataSourcePostgres, FilePath: "dados.csv"},
				Chart:  Chart{Width: 800, Height: 600},
				Server: Server{AllowedOrigins: []string{"http://a.com", "http://b.com"}},
			},
		},
		{
			name: "fonte desconhecida",
			input: Config{
				Data:  Data{Source: "excel"},
				Chart: Chart{Width: 640, Height: 400},
			},
			wantErr: true,
		},
		{
			name: "gráfico sem dimensão",
			input: Config{
				Data: Data{Source: DataSourceCSV},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			err := cfg.normalize()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
