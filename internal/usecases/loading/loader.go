// Package loading contém o carregamento da tabela de vendas a partir do arquivo CSV
// ou de uma fonte alternativa, além do cache compartilhado entre requisições.
package loading

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const ctxCheckInterval = 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVLoader carrega a tabela a partir de um arquivo CSV com cabeçalho
type CSVLoader struct {
	path string
}

// NewCSVLoader cria um loader para o caminho informado
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Source retorna o caminho do arquivo
func (l *CSVLoader) Source() string {
	return l.path
}

// Version identifica o conteúdo atual do arquivo pela data de modificação e tamanho
func (l *CSVLoader) Version() (string, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NewLoadError(ErrFileNotFound, CodeFileNotFound, l.path, "")
		}
		return "", errors.Wrapf(err, "erro ao verificar arquivo %s", l.path)
	}

	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}

// Load lê o arquivo inteiro; qualquer falha interrompe a carga
func (l *CSVLoader) Load(ctx context.Context) (*domain.SalesTable, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewLoadError(ErrFileNotFound, CodeFileNotFound, l.path, "")
		}
		return nil, errors.Wrapf(err, "erro ao abrir arquivo %s", l.path)
	}
	defer file.Close()

	table, err := ParseCSV(ctx, file, l.path)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path": l.path,
		"rows": table.Len(),
	}).Debug("Arquivo de vendas lido")

	return table, nil
}

// ParseCSV converte o conteúdo CSV na tabela de vendas.
// Um arquivo sem colunas é ErrEmptyData; um arquivo só com cabeçalho é uma tabela vazia válida.
func ParseCSV(ctx context.Context, r io.Reader, source string) (*domain.SalesTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", source)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, NewLoadError(ErrEmptyData, CodeEmptyData, source, "")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, NewLoadError(ErrEmptyData, CodeEmptyData, source, "")
	}
	if err != nil {
		return nil, malformed(err, source)
	}

	columns, err := indexColumns(header, source)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0)
	for i := 0; ; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err, source)
		}

		line, _ := reader.FieldPos(0)

		date, err := parseDate(columns.field(row, domain.ColumnDate))
		if err != nil {
			return nil, NewLoadErrorAtLine(ErrInvalidDate, CodeInvalidData, source, line, err.Error())
		}

		records = append(records, domain.SalesRecord{
			Date:      date,
			Region:    columns.field(row, domain.ColumnRegion),
			Product:   columns.field(row, domain.ColumnProduct),
			UnitsSold: parseNumber(columns.field(row, domain.ColumnUnitsSold)),
			Revenue:   parseNumber(columns.field(row, domain.ColumnRevenue)),
		})
	}

	return domain.NewSalesTable(records), nil
}

// columnIndex mapeia o nome da coluna para a posição no arquivo
type columnIndex map[string]int

func indexColumns(header []string, source string) (columnIndex, error) {
	index := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	missing := make([]string, 0)
	for _, required := range domain.RequiredColumns {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return nil, NewLoadErrorAtLine(ErrMissingColumn, CodeInvalidData, source, 1, strings.Join(missing, ", "))
	}

	return index, nil
}

func (c columnIndex) field(row []string, column string) string {
	i, ok := c[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func malformed(err error, source string) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return NewLoadErrorAtLine(ErrMalformedFile, CodeInvalidData, source, parseErr.Line, parseErr.Err.Error())
	}
	return NewLoadError(ErrMalformedFile, CodeInvalidData, source, err.Error())
}
