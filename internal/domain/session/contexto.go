// Package session mantém o contexto de busca da sessão do operador: no
// máximo um produto resolvido por vez, condição para registrar contagens.
package session

import (
	"sync"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// Contexto é o slot único da sessão, um tipo soma explícito
// Vazio | Resolvido(produto) em vez de estado ambiente.
//
// Transições: busca com sucesso → Resolvido (substitui o anterior);
// busca com falha → Vazio. Não há limpeza independente de uma nova busca;
// o estado inicial é Vazio.
type Contexto struct {
	mu      sync.Mutex
	produto *entity.Produto
}

// NewContexto devolve um contexto Vazio.
func NewContexto() *Contexto { return &Contexto{} }

// Resolver coloca o contexto em Resolvido com o produto dado.
func (c *Contexto) Resolver(p entity.Produto) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copia := p
	c.produto = &copia
}

// Limpar devolve o contexto a Vazio (busca com falha).
func (c *Contexto) Limpar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.produto = nil
}

// Atual devolve o produto resolvido e true, ou o zero e false se Vazio.
func (c *Contexto) Atual() (entity.Produto, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.produto == nil {
		return entity.Produto{}, false
	}
	return *c.produto, true
}
