package models

// DashboardStats é calculado no servidor; o painel só exibe.
type DashboardStats struct {
	TotalFuncionarios         int64 `json:"total_funcionarios"`
	TotalClientes             int64 `json:"total_clientes"`
	TotalEmpresas             int64 `json:"total_empresas"`
	FuncionariosPresentesHoje int64 `json:"funcionarios_presentes_hoje"`
	FuncionariosAusentesHoje  int64 `json:"funcionarios_ausentes_hoje"`
	AtestadosAtivos           int64 `json:"atestados_ativos"`
}
