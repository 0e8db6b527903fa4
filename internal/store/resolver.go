package store

// NotFound é exibido quando o id referenciado não existe na coleção carregada.
const NotFound = "Não encontrado"

func (s State) FuncaoNome(id string) string {
	if f, ok := s.Funcoes.Get(id); ok {
		return f.Nome
	}
	return NotFound
}

func (s State) EmpresaNome(id string) string {
	if e, ok := s.Empresas.Get(id); ok {
		return e.RazaoSocial
	}
	return NotFound
}

func (s State) ClienteNome(id string) string {
	if c, ok := s.Clientes.Get(id); ok {
		return c.RazaoSocial
	}
	return NotFound
}

func (s State) FuncionarioNome(id string) string {
	if f, ok := s.Funcionarios.Get(id); ok {
		return f.Nome
	}
	return NotFound
}
