package loading

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const validCSV = `tanggal,wilayah,produk,jumlah_terjual,total_penjualan
2024-01-01,Jakarta,Laptop,2,3000
2024-01-01,Bandung,Mouse,10,150.5
2024-01-02,Jakarta,Mouse,5,75
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCSVLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		missing  bool
		wantErr  error
		validate func(t *testing.T, table *domain.SalesTable)
	}{
		{
			name:    "Arquivo válido - deve carregar todas as linhas na ordem do arquivo",
			content: validCSV,
			validate: func(t *testing.T, table *domain.SalesTable) {
				require.Equal(t, 3, table.Len())
				assert.Equal(t, domain.RequiredColumns, table.Columns)
				assert.Equal(t, date(2024, 1, 1), table.Records[0].Date)
				assert.Equal(t, "Jakarta", table.Records[0].Region)
				assert.Equal(t, "Laptop", table.Records[0].Product)
				assert.Equal(t, 2.0, table.Records[0].UnitsSold)
				assert.Equal(t, 3000.0, table.Records[0].Revenue)
				assert.Equal(t, 150.5, table.Records[1].Revenue)
				assert.Equal(t, date(2024, 1, 2), table.Records[2].Date)
			},
		},
		{
			name:    "Arquivo inexistente - deve retornar ErrFileNotFound",
			missing: true,
			wantErr: ErrFileNotFound,
		},
		{
			name:    "Arquivo vazio - deve retornar ErrEmptyData",
			content: "",
			wantErr: ErrEmptyData,
		},
		{
			name:    "Arquivo só com espaços - deve retornar ErrEmptyData",
			content: "\n  \n\n",
			wantErr: ErrEmptyData,
		},
		{
			name:    "Somente cabeçalho - deve retornar tabela vazia",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n",
			validate: func(t *testing.T, table *domain.SalesTable) {
				assert.True(t, table.IsEmpty())
				assert.Equal(t, domain.RequiredColumns, table.Columns)
			},
		},
		{
			name:    "Coluna obrigatória ausente - deve retornar ErrMissingColumn",
			content: "tanggal,wilayah,produk,jumlah_terjual\n2024-01-01,Jakarta,Laptop,2\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "Data inválida - deve falhar a carga inteira",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n2024-01-01,Jakarta,Laptop,2,10\nbukan-tanggal,Jakarta,Laptop,2,10\n",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "Data vazia - deve falhar a carga inteira",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n,Jakarta,Laptop,2,10\n",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "Números inválidos ou vazios - devem virar NaN",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n2024-01-01,Jakarta,Laptop,dua,\n",
			validate: func(t *testing.T, table *domain.SalesTable) {
				require.Equal(t, 1, table.Len())
				assert.True(t, math.IsNaN(table.Records[0].UnitsSold))
				assert.True(t, math.IsNaN(table.Records[0].Revenue))
			},
		},
		{
			name:    "Números infinitos - devem virar NaN",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n2024-01-01,A,X,1,inf\n2024-01-02,A,X,-Infinity,+Inf\n",
			validate: func(t *testing.T, table *domain.SalesTable) {
				require.Equal(t, 2, table.Len())
				assert.Equal(t, 1.0, table.Records[0].UnitsSold)
				assert.True(t, math.IsNaN(table.Records[0].Revenue))
				assert.True(t, math.IsNaN(table.Records[1].UnitsSold))
				assert.True(t, math.IsNaN(table.Records[1].Revenue))
			},
		},
		{
			name:    "Espaços em wilayah e produk - devem ser preservados",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n2024-01-01,Jakarta ,Laptop,1,10\n2024-01-02,Jakarta, Laptop,2,20\n",
			validate: func(t *testing.T, table *domain.SalesTable) {
				require.Equal(t, 2, table.Len())
				assert.Equal(t, "Jakarta ", table.Records[0].Region)
				assert.Equal(t, "Laptop", table.Records[0].Product)
				assert.Equal(t, "Jakarta", table.Records[1].Region)
				assert.Equal(t, " Laptop", table.Records[1].Product)
			},
		},
		{
			name:    "Colunas fora de ordem, extras e BOM - deve mapear pelo nome",
			content: "\ufefftotal_penjualan, produk ,catatan,wilayah,jumlah_terjual,tanggal\n99,Keyboard,x,Surabaya,3,01/15/2024\n",
			validate: func(t *testing.T, table *domain.SalesTable) {
				require.Equal(t, 1, table.Len())
				record := table.Records[0]
				assert.Equal(t, date(2024, 1, 15), record.Date)
				assert.Equal(t, "Surabaya", record.Region)
				assert.Equal(t, "Keyboard", record.Product)
				assert.Equal(t, 3.0, record.UnitsSold)
				assert.Equal(t, 99.0, record.Revenue)
			},
		},
		{
			name:    "Linha curta - campos ausentes viram NaN",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n2024-01-01,Jakarta,Laptop\n",
			validate: func(t *testing.T, table *domain.SalesTable) {
				require.Equal(t, 1, table.Len())
				assert.True(t, math.IsNaN(table.Records[0].UnitsSold))
			},
		},
		{
			name:    "Aspas quebradas - deve retornar ErrMalformedFile",
			content: "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n2024-01-01,\"Jakarta,Laptop,2,10\n",
			wantErr: ErrMalformedFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "penjualan_produk.csv")
			if !tt.missing {
				path = writeFile(t, "penjualan_produk.csv", tt.content)
			}

			table, err := NewCSVLoader(path).Load(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}

			require.NoError(t, err)
			tt.validate(t, table)
		})
	}
}

func TestCSVLoader_InvalidDateReportsLine(t *testing.T) {
	path := writeFile(t, "vendas.csv", "tanggal,wilayah,produk,jumlah_terjual,total_penjualan\n2024-01-01,A,X,1,1\n2024-13-45,A,X,1,1\n")

	_, err := NewCSVLoader(path).Load(context.Background())

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 3, loadErr.Line)
	assert.Equal(t, CodeInvalidData, loadErr.Code)
	assert.Equal(t, path, loadErr.Path)
}

func TestCSVLoader_Version(t *testing.T) {
	path := writeFile(t, "vendas.csv", validCSV)
	loader := NewCSVLoader(path)

	first, err := loader.Version()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	require.NoError(t, os.WriteFile(path, []byte(validCSV+"2024-01-03,Bandung,Laptop,1,1500\n"), 0o644))

	second, err := loader.Version()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, os.Remove(path))
	_, err = loader.Version()
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestParseCSV_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseCSV(ctx, strings.NewReader(validCSV), "memória")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
		code string
	}{
		{
			name: "Arquivo não encontrado",
			err:  NewLoadError(ErrFileNotFound, CodeFileNotFound, "penjualan_produk.csv", ""),
			want: "Error: File 'penjualan_produk.csv' tidak ditemukan. Pastikan CSV ada di folder yang sama.",
			code: CodeFileNotFound,
		},
		{
			name: "Arquivo vazio",
			err:  NewLoadError(ErrEmptyData, CodeEmptyData, "penjualan_produk.csv", ""),
			want: "Error: File 'penjualan_produk.csv' kosong atau tidak memiliki kolom.",
			code: CodeEmptyData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "outro.csv"))
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}

	assert.Equal(t, CodeSource, ErrorCode(assert.AnError))
}
