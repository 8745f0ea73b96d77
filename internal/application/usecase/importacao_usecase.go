package usecase

// ImportacaoUseCase cobre as duas ações da superfície que ainda não têm
// implementação: download de template e importação em massa de produtos.
// São placeholders visíveis, não funcionalidades removidas.
type ImportacaoUseCase struct {
	visao Visao
}

// NewImportacaoUseCase constrói o caso de uso.
func NewImportacaoUseCase(visao Visao) *ImportacaoUseCase {
	return &ImportacaoUseCase{visao: visao}
}

// BaixarTemplate apenas avisa que a funcionalidade não existe ainda.
func (uc *ImportacaoUseCase) BaixarTemplate() {
	uc.visao.MostrarMensagem("Funcionalidade ainda não implementada.", MsgInfo)
}

// ImportarProdutos apenas avisa que a funcionalidade não existe ainda.
func (uc *ImportacaoUseCase) ImportarProdutos() {
	uc.visao.MostrarMensagem("Funcionalidade ainda não implementada.", MsgInfo)
}
