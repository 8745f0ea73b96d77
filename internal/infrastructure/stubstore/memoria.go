// Package stubstore é uma implementação em memória do contrato da loja de
// contagens, para desenvolvimento local e testes do cliente. Não é o
// backend de produção: nada é persistido e o layout dos relatórios é
// mínimo.
package stubstore

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// Erros do stub, espelhando as respostas do serviço de estoque.
var (
	ErrCodigoDuplicado      = errors.New("Produto com este código já existe")
	ErrProdutoNaoEncontrado = errors.New("Produto não encontrado")
)

// MensagensContagem devolvidas no registro, conforme o lote já exista ou não.
const (
	MsgLoteSomado   = "Quantidade adicionada ao lote existente"
	MsgContagemNova = "Nova contagem registrada"
)

type registroContagem struct {
	id         int
	produtoID  int
	lote       string
	mes        int
	ano        int
	quantidade int
}

// Memoria guarda produtos e contagens do stub. Segura para uso concorrente;
// IDs são sequências atribuídas aqui (identidade de servidor).
type Memoria struct {
	mu          sync.Mutex
	seqProduto  int
	seqContagem int
	produtos    []entity.Produto
	contagens   []registroContagem
}

// NewMemoria constrói a loja vazia.
func NewMemoria() *Memoria { return &Memoria{} }

// CriarProduto cadastra um produto com código único.
func (m *Memoria) CriarProduto(codigo, nome string) (entity.Produto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	codigo = strings.TrimSpace(codigo)
	nome = strings.TrimSpace(nome)
	for _, p := range m.produtos {
		if p.Codigo == codigo {
			return entity.Produto{}, ErrCodigoDuplicado
		}
	}

	m.seqProduto++
	produto := entity.Produto{ID: m.seqProduto, Codigo: codigo, Nome: nome}
	m.produtos = append(m.produtos, produto)
	return produto, nil
}

// ListarProdutos devolve os produtos na ordem de cadastro.
func (m *Memoria) ListarProdutos() []entity.Produto {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Produto, len(m.produtos))
	copy(out, m.produtos)
	return out
}

// BuscarPorCodigo resolve um produto pelo código de negócio.
func (m *Memoria) BuscarPorCodigo(codigo string) (entity.Produto, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.produtos {
		if p.Codigo == codigo {
			return p, true
		}
	}
	return entity.Produto{}, false
}

// ExcluirProduto remove o produto e cascateia para todas as contagens dele.
func (m *Memoria) ExcluirProduto(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	indice := -1
	for i, p := range m.produtos {
		if p.ID == id {
			indice = i
			break
		}
	}
	if indice < 0 {
		return false
	}
	m.produtos = append(m.produtos[:indice], m.produtos[indice+1:]...)

	restantes := m.contagens[:0]
	for _, c := range m.contagens {
		if c.produtoID != id {
			restantes = append(restantes, c)
		}
	}
	m.contagens = restantes
	return true
}

// RegistrarContagem registra uma contagem nova ou soma a quantidade ao lote
// existente do mesmo produto, atualizando a validade. Devolve a mensagem a
// apresentar e se o registro foi criado (201) ou somado (200).
func (m *Memoria) RegistrarContagem(produtoCodigo, lote string, mes, ano, quantidade int) (mensagem string, criada bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var produto *entity.Produto
	for i := range m.produtos {
		if m.produtos[i].Codigo == produtoCodigo {
			produto = &m.produtos[i]
			break
		}
	}
	if produto == nil {
		return "", false, ErrProdutoNaoEncontrado
	}

	lote = strings.TrimSpace(lote)
	for i := range m.contagens {
		c := &m.contagens[i]
		if c.produtoID == produto.ID && c.lote == lote {
			c.quantidade += quantidade
			c.mes = mes
			c.ano = ano
			return MsgLoteSomado, false, nil
		}
	}

	m.seqContagem++
	m.contagens = append(m.contagens, registroContagem{
		id:         m.seqContagem,
		produtoID:  produto.ID,
		lote:       lote,
		mes:        mes,
		ano:        ano,
		quantidade: quantidade,
	})
	return MsgContagemNova, true, nil
}

// ListarContagens devolve as contagens com o produto embutido (código e
// nome, sem ID).
func (m *Memoria) ListarContagens() []entity.Contagem {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Contagem, 0, len(m.contagens))
	for _, c := range m.contagens {
		produto, ok := m.produtoPorID(c.produtoID)
		if !ok {
			continue
		}
		out = append(out, entity.Contagem{
			ID:          c.id,
			Lote:        c.lote,
			ValidadeMes: c.mes,
			ValidadeAno: c.ano,
			Quantidade:  c.quantidade,
			Produto:     entity.Produto{Codigo: produto.Codigo, Nome: produto.Nome},
		})
	}
	return out
}

// ExcluirContagem remove uma contagem pelo ID.
func (m *Memoria) ExcluirContagem(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.contagens {
		if c.id == id {
			m.contagens = append(m.contagens[:i], m.contagens[i+1:]...)
			return true
		}
	}
	return false
}

// Resumo agrega o total por produto (só produtos com ao menos uma
// contagem), ordenado por código, e o total geral.
func (m *Memoria) Resumo() entity.Resumo {
	m.mu.Lock()
	defer m.mu.Unlock()

	totais := make(map[int]int)
	for _, c := range m.contagens {
		totais[c.produtoID] += c.quantidade
	}

	resumo := entity.Resumo{Produtos: []entity.ResumoProduto{}}
	for _, p := range m.produtos {
		total, ok := totais[p.ID]
		if !ok {
			continue
		}
		resumo.Produtos = append(resumo.Produtos, entity.ResumoProduto{
			Codigo:          p.Codigo,
			Nome:            p.Nome,
			TotalQuantidade: total,
		})
		resumo.TotalGeral += total
	}
	sort.Slice(resumo.Produtos, func(i, j int) bool {
		return resumo.Produtos[i].Codigo < resumo.Produtos[j].Codigo
	})
	return resumo
}

func (m *Memoria) produtoPorID(id int) (entity.Produto, bool) {
	for _, p := range m.produtos {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Produto{}, false
}
