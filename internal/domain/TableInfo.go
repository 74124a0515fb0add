package domain

// Tipos de dados reportados no resumo de colunas
const (
	DtypeDate   = "date"
	DtypeString = "string"
	DtypeFloat  = "float64"
)

// ColumnInfo descreve uma coluna da tabela completa
type ColumnInfo struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	NonNullCount int    `json:"non_null_count"`
	Dtype        string `json:"dtype"`
}

// TableInfo é o resumo de colunas e tipos da tabela completa
type TableInfo struct {
	Entries     int            `json:"entries"`
	Columns     []ColumnInfo   `json:"columns"`
	DtypeCounts map[string]int `json:"dtype_counts"`
	MemoryUsage string         `json:"memory_usage"`
	Text        string         `json:"text"`
}
