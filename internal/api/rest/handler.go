package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucid-net/poot-engine/internal/api/rest/dto"
	"github.com/lucid-net/poot-engine/internal/api/shared/executor"
	"github.com/lucid-net/poot-engine/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitProof accepts a signed work proof
	// POST /api/v1/proofs
	SubmitProof(c *gin.Context)

	// GetProofsBySlot lists all accepted proofs for a slot
	// GET /api/v1/proofs?slot=<slot>
	GetProofsBySlot(c *gin.Context)

	// GetProofsByNode lists a node's accepted proofs over a slot range
	// GET /api/v1/nodes/:node_id/proofs?from_slot=<slot>&to_slot=<slot>
	GetProofsByNode(c *gin.Context)

	// GetEpochTally returns the ranked work tally for an epoch
	// GET /api/v1/epochs/:epoch/tally
	GetEpochTally(c *gin.Context)

	// GetEpochSchedule returns the full leader schedule for an epoch
	// GET /api/v1/epochs/:epoch/schedule
	GetEpochSchedule(c *gin.Context)

	// GetSlotSchedule returns one slot's schedule entry and any recorded result
	// GET /api/v1/slots/:slot/schedule
	GetSlotSchedule(c *gin.Context)

	// RecordSlotResult records a slot's production outcome, write-once
	// POST /api/v1/slots/:slot/result
	RecordSlotResult(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// SubmitProof accepts a signed work proof
func (h *handler) SubmitProof(c *gin.Context) {
	var req dto.SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	proof := req.ToDomain()
	if err := h.executor.SubmitProof(c.Request.Context(), proof); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromProof(proof))
}

// GetProofsBySlot lists all accepted proofs for a slot
func (h *handler) GetProofsBySlot(c *gin.Context) {
	slot, ok := parseUintQuery(c, "slot")
	if !ok {
		return
	}

	proofs, err := h.executor.ProofsBySlot(c.Request.Context(), slot)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProofsResponse{Proofs: dto.FromProofs(proofs)})
}

// GetProofsByNode lists a node's accepted proofs over a slot range
func (h *handler) GetProofsByNode(c *gin.Context) {
	nodeID := c.Param("node_id")
	if nodeID == "" {
		respondBadRequest(c, "Node ID is required")
		return
	}

	fromSlot, ok := parseUintQuery(c, "from_slot")
	if !ok {
		return
	}
	toSlot, ok := parseUintQuery(c, "to_slot")
	if !ok {
		return
	}
	if toSlot < fromSlot {
		respondBadRequest(c, "to_slot must not precede from_slot")
		return
	}

	proofs, err := h.executor.ProofsByNode(c.Request.Context(), nodeID, fromSlot, toSlot)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProofsResponse{Proofs: dto.FromProofs(proofs)})
}

// GetEpochTally returns the ranked work tally for an epoch
func (h *handler) GetEpochTally(c *gin.Context) {
	epoch, ok := parseUintParam(c, "epoch")
	if !ok {
		return
	}

	entries, err := h.executor.EpochTally(c.Request.Context(), domain.Epoch(epoch))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(entries) == 0 {
		respondNotFound(c, "No tally for epoch")
		return
	}

	c.JSON(http.StatusOK, dto.FromTally(domain.Epoch(epoch), entries))
}

// GetEpochSchedule returns the full leader schedule for an epoch
func (h *handler) GetEpochSchedule(c *gin.Context) {
	epoch, ok := parseUintParam(c, "epoch")
	if !ok {
		return
	}

	entries, err := h.executor.EpochSchedule(c.Request.Context(), domain.Epoch(epoch))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if len(entries) == 0 {
		respondNotFound(c, "No schedule for epoch")
		return
	}

	c.JSON(http.StatusOK, dto.FromSchedule(domain.Epoch(epoch), entries))
}

// GetSlotSchedule returns one slot's schedule entry and any recorded result
func (h *handler) GetSlotSchedule(c *gin.Context) {
	slot, ok := parseUintParam(c, "slot")
	if !ok {
		return
	}

	entry, err := h.executor.SlotSchedule(c.Request.Context(), slot)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromScheduleEntry(entry))
}

// RecordSlotResult records a slot's production outcome, write-once
func (h *handler) RecordSlotResult(c *gin.Context) {
	slot, ok := parseUintParam(c, "slot")
	if !ok {
		return
	}

	var req dto.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	result := &domain.SlotResult{
		Slot:   slot,
		Winner: req.Winner,
		Reason: req.Reason,
	}
	if err := h.executor.RecordSlotResult(c.Request.Context(), result); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AcceptedResponse{Status: "recorded"})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseUintParam parses a required numeric path parameter
func parseUintParam(c *gin.Context, name string) (uint64, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid "+name+" parameter", err.Error())
		return 0, false
	}
	return value, true
}

// parseUintQuery parses a required numeric query parameter
func parseUintQuery(c *gin.Context, name string) (uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		respondBadRequest(c, name+" query parameter is required")
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid "+name+" parameter", err.Error())
		return 0, false
	}
	return value, true
}
