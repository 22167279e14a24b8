package entities

// PlanFeature is a line item inside a plan. Price zero means included;
// a positive price is an optional extra the buyer can add at checkout.

type PlanFeature struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PlanDetails is the operator-editable content and pricing of one plan tier.

type PlanDetails struct {
	ID            Plan          `json:"id"`
	Active        bool          `json:"active"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	OldPrice      float64       `json:"old_price"`
	Highlight     bool          `json:"highlight"`
	HighlightText string        `json:"highlight_text,omitempty"`
	Color         string        `json:"color"`
	Features      []PlanFeature `json:"features"`
}

// PlanSet pairs the two tiers offered for one search type.

type PlanSet struct {
	Basic    PlanDetails `json:"basic"`
	Complete PlanDetails `json:"complete"`
}

func (s PlanSet) ByPlan(p Plan) PlanDetails {
	if p == PlanComplete {
		return s.Complete
	}
	return s.Basic
}

// PlanCatalog holds the plan sets per search funnel.

type PlanCatalog struct {
	CPF   PlanSet `json:"cpf"`
	CNPJ  PlanSet `json:"cnpj"`
	Plate PlanSet `json:"plate"`
	Phone PlanSet `json:"phone"`
}

func (c PlanCatalog) BySearchType(t SearchType) PlanSet {
	switch t {
	case SearchTypeCNPJ:
		return c.CNPJ
	case SearchTypePlate:
		return c.Plate
	case SearchTypePhone:
		return c.Phone
	default:
		return c.CPF
	}
}

// Amount prices a checkout: base plan price plus the selected optional
// features, matched by name against the configured feature list. Unknown or
// included (price zero) selections contribute nothing.
func (c PlanCatalog) Amount(t SearchType, p Plan, selected []string) (float64, []PlanExtra) {
	details := c.BySearchType(t).ByPlan(p)
	amount := details.Price
	var extras []PlanExtra
	for _, name := range selected {
		for _, f := range details.Features {
			if f.Name == name && f.Price > 0 {
				amount += f.Price
				extras = append(extras, PlanExtra{Name: f.Name, Price: f.Price})
				break
			}
		}
	}
	return amount, extras
}

// DefaultPlanCatalog is the shipped catalog used until an operator saves one.
func DefaultPlanCatalog() PlanCatalog {
	return PlanCatalog{
		CPF: PlanSet{
			Basic: PlanDetails{
				ID: PlanBasic, Active: true, Name: "Regularidade CPF",
				Description: "Ideal para verificações rápidas",
				Price:       29.90, OldPrice: 49.90, Color: "#2563eb",
				Features: []PlanFeature{
					{Name: "Situação Cadastral (Receita)"},
					{Name: "Processos Judiciais Básicos"},
					{Name: "Monitoramento 24h (SMS)", Price: 14.90},
				},
			},
			Complete: PlanDetails{
				ID: PlanComplete, Active: true, Name: "Consulta Completa CPF",
				Description: "Análise total de riscos",
				Price:       34.90, OldPrice: 69.90, Highlight: true, HighlightText: "Mais Vendido", Color: "#059669",
				Features: []PlanFeature{
					{Name: "Tudo do Plano Básico"},
					{Name: "Score de Crédito Detalhado"},
					{Name: "Certidões Negativas"},
					{Name: "Radar de Vazamento de Dados", Price: 9.90},
				},
			},
		},
		CNPJ: PlanSet{
			Basic: PlanDetails{
				ID: PlanBasic, Active: true, Name: "Regularidade CNPJ",
				Description: "Verificação empresarial simples",
				Price:       39.90, OldPrice: 59.90, Color: "#2563eb",
				Features: []PlanFeature{
					{Name: "Cartão CNPJ"},
					{Name: "Quadro Societário"},
				},
			},
			Complete: PlanDetails{
				ID: PlanComplete, Active: true, Name: "Dossiê Empresarial",
				Description: "Análise profunda da empresa",
				Price:       59.90, OldPrice: 89.90, Highlight: true, HighlightText: "Recomendado", Color: "#059669",
				Features: []PlanFeature{
					{Name: "Tudo do Básico"},
					{Name: "Dívidas Trabalhistas"},
					{Name: "Relatório Financeiro", Price: 29.90},
				},
			},
		},
		Plate: PlanSet{
			Basic: PlanDetails{
				ID: PlanBasic, Active: true, Name: "Consulta Placa",
				Description: "Dados básicos do veículo",
				Price:       29.90, OldPrice: 45.00, Color: "#2563eb",
				Features: []PlanFeature{
					{Name: "Dados do Veículo (BIN)"},
					{Name: "Situação IPVA"},
				},
			},
			Complete: PlanDetails{
				ID: PlanComplete, Active: true, Name: "Veículo Completo",
				Description: "Histórico total do carro",
				Price:       49.90, OldPrice: 79.90, Highlight: true, HighlightText: "Essencial", Color: "#059669",
				Features: []PlanFeature{
					{Name: "Tudo do Básico"},
					{Name: "Roubo e Furto"},
					{Name: "Sinistros"},
				},
			},
		},
		Phone: PlanSet{
			Basic: PlanDetails{
				ID: PlanBasic, Active: true, Name: "Busca Telefônica",
				Description: "Dados da linha",
				Price:       19.90, OldPrice: 29.90, Color: "#2563eb",
				Features: []PlanFeature{
					{Name: "Operadora Atual"},
					{Name: "Estado da Linha"},
				},
			},
			Complete: PlanDetails{
				ID: PlanComplete, Active: true, Name: "Investigação Tel",
				Description: "Localize o titular",
				Price:       39.90, OldPrice: 59.90, Highlight: true, HighlightText: "Exclusivo", Color: "#059669",
				Features: []PlanFeature{
					{Name: "Titular da Linha"},
					{Name: "Endereços Vinculados"},
				},
			},
		},
	}
}
