package agenda

import (
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	// Janela de silêncio entre a última edição de filtro e a
	// emissão da consulta.
	DefaultDebounce = 500 * time.Millisecond

	// Tamanho fixo de página da listagem.
	DefaultPageSize = 5
)

// Filters são os cinco campos independentes do painel. Valores
// vazios ficam fora do descritor emitido.
type Filters struct {
	DateFrom       string
	DateTo         string
	ProfessionalID string
	ClientID       string
	Status         string
}

// Query é o descritor canônico de uma consulta paginada. Seq
// cresce a cada emissão e serve de guarda contra respostas fora
// de ordem: quem consome descarta resultados cujo Seq não for
// mais o corrente (ver Composer.IsCurrent).
type Query struct {
	Filters Filters
	Page    int
	Size    int
	Refresh uint64
	Seq     uint64
}

// Values monta os parâmetros da listagem, omitindo campos vazios
// em vez de enviar strings em branco.
func (q Query) Values() url.Values {
	v := url.Values{}

	if q.Filters.DateFrom != "" {
		v.Set("date_from", q.Filters.DateFrom)
	}
	if q.Filters.DateTo != "" {
		v.Set("date_to", q.Filters.DateTo)
	}
	if q.Filters.ProfessionalID != "" {
		v.Set("professional_id", q.Filters.ProfessionalID)
	}
	if q.Filters.ClientID != "" {
		v.Set("client_id", q.Filters.ClientID)
	}
	if q.Filters.Status != "" {
		v.Set("status", q.Filters.Status)
	}

	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	v.Set("sort", "appointment_date,desc")

	return v
}

// Composer junta edições de filtro em uma única consulta por
// janela de debounce e emite descritores canônicos. Mudança de
// filtro volta a página para zero; mudança de página ou bump do
// token de atualização emite na hora, sem mexer nos filtros.
type Composer struct {
	mu sync.Mutex

	filters Filters
	page    int
	size    int
	refresh uint64
	seq     uint64

	window   time.Duration
	timer    *time.Timer
	timerGen uint64

	out    chan Query
	closed bool
}

func NewComposer(window time.Duration) *Composer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Composer{
		size:   DefaultPageSize,
		window: window,
		out:    make(chan Query, 1),
	}
}

// Queries entrega o descritor mais recente; emissões antigas não
// consumidas são substituídas pela última intenção.
func (c *Composer) Queries() <-chan Query {
	return c.out
}

// SetFilters registra os valores atuais dos campos, zera a página
// e (re)arma o debounce. A consulta só sai depois da janela de
// silêncio sem novas edições.
func (c *Composer) SetFilters(f Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.filters = f
	c.page = 0
	c.scheduleLocked()
}

// ClearFilters limpa todos os campos e volta para a página zero.
func (c *Composer) ClearFilters() {
	c.SetFilters(Filters{})
}

// SetPage troca só a página; filtros ficam como estão e a emissão
// é imediata.
func (c *Composer) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if page < 0 {
		page = 0
	}

	c.page = page
	c.stopTimerLocked()
	c.emitLocked()
}

// Bump incrementa o token de atualização e força uma reconsulta
// com o mesmo estado de filtro e página. Não é uma mudança de
// filtro: a página não volta a zero.
func (c *Composer) Bump() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.refresh++
	c.stopTimerLocked()
	c.emitLocked()
}

// IsCurrent responde se seq ainda é a emissão mais recente. Quem
// consome usa isto para descartar respostas que chegaram fora de
// ordem.
func (c *Composer) IsCurrent(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return seq == c.seq
}

// Close cancela qualquer debounce pendente; nada mais é emitido.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.closed = true
	c.stopTimerLocked()
	close(c.out)
}

// --------------------------------------------------
// internals (mutex já adquirido)
// --------------------------------------------------

func (c *Composer) scheduleLocked() {
	c.stopTimerLocked()

	c.timerGen++
	gen := c.timerGen

	c.timer = time.AfterFunc(c.window, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// um timer antigo pode acordar depois de Stop; a geração
		// garante que só a última agenda emite
		if c.closed || gen != c.timerGen {
			return
		}
		c.emitLocked()
	})
}

func (c *Composer) stopTimerLocked() {
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Composer) emitLocked() {
	c.seq++

	q := Query{
		Filters: c.filters,
		Page:    c.page,
		Size:    c.size,
		Refresh: c.refresh,
		Seq:     c.seq,
	}

	// buffer de um: descarta a emissão não consumida e entrega a
	// mais nova (a última edição vence)
	for {
		select {
		case c.out <- q:
			return
		default:
			select {
			case <-c.out:
			default:
			}
		}
	}
}
