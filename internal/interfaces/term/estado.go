package term

import (
	"fmt"
	"io"
	"sync"
)

// EstadoCarregamento é o indicador de carregamento compartilhado do
// processo: qualquer requisição em voo o mantém visível. É um contador com
// aquisição/liberação em escopo: a liberação é garantida em todo caminho
// de saída pelo chamador (defer no cliente da loja).
type EstadoCarregamento struct {
	mu    sync.Mutex
	emVoo int
	saida io.Writer
}

// NewEstadoCarregamento constrói o estado escrevendo o indicador em saida.
func NewEstadoCarregamento(saida io.Writer) *EstadoCarregamento {
	return &EstadoCarregamento{saida: saida}
}

// Carregando liga o indicador e devolve a função que o desliga. O texto só
// aparece na transição 0→1; requisições sobrepostas compartilham o
// indicador.
func (e *EstadoCarregamento) Carregando() (liberar func()) {
	e.mu.Lock()
	e.emVoo++
	if e.emVoo == 1 {
		fmt.Fprintln(e.saida, "Carregando...")
	}
	e.mu.Unlock()

	var uma sync.Once
	return func() {
		uma.Do(func() {
			e.mu.Lock()
			e.emVoo--
			e.mu.Unlock()
		})
	}
}

// EmAndamento informa se há requisição em voo.
func (e *EstadoCarregamento) EmAndamento() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.emVoo > 0
}
