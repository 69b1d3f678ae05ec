package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iryswiki/iryswiki/internal/api/rest/dto"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/forum"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListCategories returns the thread categories
	// GET /api/v1/categories
	ListCategories(c *gin.Context)

	// ListThreads returns every thread, most recent activity first
	// GET /api/v1/threads?category=<category>
	ListThreads(c *gin.Context)

	// GetThread returns a thread and records a view
	// GET /api/v1/threads/:id
	GetThread(c *gin.Context)

	// CreateThread pays the thread fee and creates a thread
	// POST /api/v1/threads
	CreateThread(c *gin.Context)

	// CreateReply pays the reply fee and replies to a thread
	// POST /api/v1/threads/:id/replies
	CreateReply(c *gin.Context)

	// GetProfile returns the profile of a wallet
	// GET /api/v1/profiles/:address
	GetProfile(c *gin.Context)

	// SaveProfile pays the profile fee and saves the session wallet profile
	// PUT /api/v1/profile
	SaveProfile(c *gin.Context)

	// ListTransactions returns the verified transaction ledger
	// GET /api/v1/transactions?address=<address>
	ListTransactions(c *gin.Context)

	// GetRequirement returns what an action costs
	// GET /api/v1/requirements/:action
	GetRequirement(c *gin.Context)

	// GetBalance returns the session wallet balance
	// GET /api/v1/wallet/balance
	GetBalance(c *gin.Context)

	// GetStats summarises the stored collections
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	forum       forum.Forum
	explorerURL string
}

// NewHandler creates a new REST API handler
func NewHandler(f forum.Forum, explorerURL string) Handler {
	return &handler{
		forum:       f,
		explorerURL: strings.TrimRight(explorerURL, "/"),
	}
}

func (h *handler) receipt(hash string) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		TransactionHash: hash,
		ExplorerURL:     fmt.Sprintf("%s/tx/%s", h.explorerURL, hash),
	}
}

func (h *handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.forum.Categories()})
}

func (h *handler) ListThreads(c *gin.Context) {
	threads, err := h.forum.ListThreads(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to list threads")
		return
	}

	if category := c.Query("category"); category != "" {
		if !domain.IsValidCategory(domain.Category(category)) {
			respondBadRequest(c, "Invalid category", category)
			return
		}
		filtered := make([]domain.Thread, 0, len(threads))
		for _, t := range threads {
			if string(t.Category) == category {
				filtered = append(filtered, t)
			}
		}
		threads = filtered
	}

	c.JSON(http.StatusOK, dto.ThreadListResponse{Threads: threads, Total: len(threads)})
}

func (h *handler) GetThread(c *gin.Context) {
	id := c.Param("id")

	thread, err := h.forum.RecordView(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err, "Failed to get thread")
		return
	}
	if thread == nil {
		respondNotFound(c, "Thread not found", id)
		return
	}

	c.JSON(http.StatusOK, thread)
}

func (h *handler) CreateThread(c *gin.Context) {
	var req dto.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	hash, err := h.forum.CreateThread(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondDomainError(c, err, "Failed to create thread")
		return
	}

	c.JSON(http.StatusCreated, h.receipt(hash))
}

func (h *handler) CreateReply(c *gin.Context) {
	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	hash, err := h.forum.CreateReply(c.Request.Context(), c.Param("id"), domain.NewReply{Content: req.Content})
	if err != nil {
		respondDomainError(c, err, "Failed to create reply")
		return
	}

	c.JSON(http.StatusCreated, h.receipt(hash))
}

func (h *handler) GetProfile(c *gin.Context) {
	address := c.Param("address")
	if !domain.IsHexAddress(address) {
		respondBadRequest(c, "Invalid wallet address", address)
		return
	}

	profile, err := h.forum.GetProfile(c.Request.Context(), address)
	if err != nil {
		respondDomainError(c, err, "Failed to get profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "Profile not found", address)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *handler) SaveProfile(c *gin.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	hash, err := h.forum.SaveProfile(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondDomainError(c, err, "Failed to save profile")
		return
	}

	c.JSON(http.StatusOK, h.receipt(hash))
}

func (h *handler) ListTransactions(c *gin.Context) {
	var (
		txs []domain.VerifiedTransaction
		err error
	)

	if address := c.Query("address"); address != "" {
		if !domain.IsHexAddress(address) {
			respondBadRequest(c, "Invalid wallet address", address)
			return
		}
		txs, err = h.forum.GetVerifiedTransactionsBy(c.Request.Context(), address)
	} else {
		txs, err = h.forum.GetVerifiedTransactions(c.Request.Context())
	}
	if err != nil {
		respondDomainError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{Transactions: txs, Total: len(txs)})
}

func (h *handler) GetRequirement(c *gin.Context) {
	action, err := domain.ParseActionKind(c.Param("action"))
	if err != nil {
		respondBadRequest(c, "Unknown action", c.Param("action"))
		return
	}

	requirement, err := h.forum.RequirementFor(action)
	if err != nil {
		respondDomainError(c, err, "Failed to get requirement")
		return
	}

	c.JSON(http.StatusOK, requirement)
}

func (h *handler) GetBalance(c *gin.Context) {
	address, err := h.forum.Address()
	if err != nil {
		respondDomainError(c, err, "Failed to get wallet address")
		return
	}

	balance, err := h.forum.Balance(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Address: address,
		Balance: balance,
		Symbol:  domain.NATIVE_TOKEN_SYMBOL,
	})
}

func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.forum.Stats(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "iryswiki-api",
		"ready":   h.forum.Ready(),
	})
}
