package domain

// AllValues é o valor sentinela do seletor que desativa o predicado da dimensão
const AllValues = "all"

// SalesTable é a tabela de vendas carregada em memória.
// Nunca é alterada depois de carregada; filtros produzem uma nova tabela.
type SalesTable struct {
	Columns []string      `json:"columns"`
	Records []SalesRecord `json:"records"`
}

// NewSalesTable cria uma tabela com as colunas canônicas
func NewSalesTable(records []SalesRecord) *SalesTable {
	columns := make([]string, len(RequiredColumns))
	copy(columns, RequiredColumns)

	return &SalesTable{
		Columns: columns,
		Records: records,
	}
}

// Len retorna o número de linhas
func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// IsEmpty indica se a tabela não possui linhas
func (t *SalesTable) IsEmpty() bool {
	return t.Len() == 0
}

// FilterSelection representa a escolha do usuário nos dois seletores
type FilterSelection struct {
	Region  string `json:"region"`
	Product string `json:"product"`
}

// NewFilterSelection normaliza valores vazios para o sentinela
func NewFilterSelection(region, product string) FilterSelection {
	if region == "" {
		region = AllValues
	}
	if product == "" {
		product = AllValues
	}
	return FilterSelection{Region: region, Product: product}
}

// AllRegions indica se nenhum predicado de região deve ser aplicado
func (s FilterSelection) AllRegions() bool {
	return s.Region == AllValues || s.Region == ""
}

// AllProducts indica se nenhum predicado de produto deve ser aplicado
func (s FilterSelection) AllProducts() bool {
	return s.Product == AllValues || s.Product == ""
}

// FacetOptions contém as opções dos seletores, sentinela primeiro
type FacetOptions struct {
	Regions  []string `json:"regions"`
	Products []string `json:"products"`
}
