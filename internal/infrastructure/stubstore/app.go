package stubstore

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

type handler struct {
	mem *Memoria
	log *logger.Logger
}

// NewApp constrói o app Fiber do stub com todas as rotas do contrato sob
// /api. Os códigos de status e os payloads de erro ({"erro": ...}) seguem
// o contrato do serviço de estoque.
func NewApp(mem *Memoria, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "contagem-estoque-stub"})
	app.Use(recover.New())

	h := &handler{mem: mem, log: log}

	api := app.Group("/api")
	api.Get("/produtos", h.listarProdutos)
	api.Post("/produtos", h.criarProduto)
	api.Delete("/produtos/:id", h.excluirProduto)
	api.Get("/produtos/:codigo", h.buscarProduto)
	api.Get("/contagens", h.listarContagens)
	api.Post("/contagens", h.registrarContagem)
	api.Delete("/contagens/:id", h.excluirContagem)
	api.Get("/relatorio/resumo", h.resumo)
	api.Get("/relatorio/pdf_novo", h.relatorioPDF)
	api.Get("/relatorio/excel_novo", h.relatorioExcel)

	return app
}

func (h *handler) listarProdutos(c *fiber.Ctx) error {
	return c.JSON(h.mem.ListarProdutos())
}

func (h *handler) criarProduto(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "Código e nome são obrigatórios"})
	}
	if in.Codigo == "" || in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "Código e nome são obrigatórios"})
	}
	produto, err := h.mem.CriarProduto(in.Codigo, in.Nome)
	if err != nil {
		if errors.Is(err, ErrCodigoDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErroResponse{Erro: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErroResponse{Erro: err.Error()})
	}
	h.log.Info().Str("codigo", produto.Codigo).Msg("produto cadastrado")
	return c.Status(fiber.StatusCreated).JSON(produto)
}

func (h *handler) excluirProduto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "ID inválido"})
	}
	if !h.mem.ExcluirProduto(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErroResponse{Erro: ErrProdutoNaoEncontrado.Error()})
	}
	h.log.Info().Int("id", id).Msg("produto excluído com contagens em cascata")
	return c.JSON(dto.MensagemResponse{Mensagem: "Produto deletado com sucesso"})
}

func (h *handler) buscarProduto(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	produto, ok := h.mem.BuscarPorCodigo(codigo)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErroResponse{Erro: ErrProdutoNaoEncontrado.Error()})
	}
	return c.JSON(produto)
}

func (h *handler) listarContagens(c *fiber.Ctx) error {
	return c.JSON(h.mem.ListarContagens())
}

func (h *handler) registrarContagem(c *fiber.Ctx) error {
	var in dto.CriarContagemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "Todos os campos são obrigatórios: produto_codigo, lote, validade_mes, validade_ano, quantidade"})
	}
	if in.ProdutoCodigo == "" || in.Lote == "" || in.ValidadeMes == 0 || in.ValidadeAno == 0 || in.Quantidade == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "Todos os campos são obrigatórios: produto_codigo, lote, validade_mes, validade_ano, quantidade"})
	}

	mensagem, criada, err := h.mem.RegistrarContagem(in.ProdutoCodigo, in.Lote, in.ValidadeMes, in.ValidadeAno, in.Quantidade)
	if err != nil {
		if errors.Is(err, ErrProdutoNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErroResponse{Erro: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErroResponse{Erro: err.Error()})
	}

	status := fiber.StatusOK
	if criada {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.MensagemResponse{Mensagem: mensagem})
}

func (h *handler) excluirContagem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErroResponse{Erro: "ID inválido"})
	}
	if !h.mem.ExcluirContagem(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErroResponse{Erro: "Contagem não encontrada"})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Contagem deletada com sucesso"})
}

func (h *handler) resumo(c *fiber.Ctx) error {
	return c.JSON(h.mem.Resumo())
}

func (h *handler) relatorioPDF(c *fiber.Ctx) error {
	conteudo, err := gerarPDF(h.mem.Resumo())
	if err != nil {
		h.log.Error().Err(err).Msg("gerar relatório PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErroResponse{Erro: "Erro ao gerar relatório PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(conteudo)
}

func (h *handler) relatorioExcel(c *fiber.Ctx) error {
	conteudo, err := gerarExcel(h.mem.Resumo())
	if err != nil {
		h.log.Error().Err(err).Msg("gerar relatório Excel")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErroResponse{Erro: "Erro ao gerar relatório Excel"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(conteudo)
}
