package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

// Handler exposes order intake over HTTP.
type Handler struct {
	repo Repository
}

// NewHandler creates a handler backed by the given repository.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the order routes on the router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/orders", h.create).Methods(http.MethodPost)
	r.HandleFunc("/orders/{orderId}", h.get).Methods(http.MethodGet)
}

// createRequest is the order submission body. Items is opaque: stored
// verbatim and returned verbatim, never interpreted.
type createRequest struct {
	UserID string          `json:"userId"`
	Items  json.RawMessage `json:"items"`
}

type createResponse struct {
	Message string `json:"message"`
	OrderID int    `json:"orderId"`
}

// create records a new pending order. The body is accepted uncritically; a
// malformed body decodes to zero values and still produces an order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body order.createRequest true "Order"
// @Success 200 {object} order.createResponse
// @Router /orders [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "order.create")
	defer span.End()

	var req createRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	id, err := h.repo.Create(ctx, req.UserID, req.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, createResponse{Message: "Order created", OrderID: id})
}

// get returns an order by ID. Non-numeric IDs coerce to zero, which matches
// no order and falls into the not-found path.
// @Summary Get order
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {object} map[string]string
// @Router /orders/{orderId} [get]
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "order.get")
	defer span.End()

	id, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	o, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, o)
}

func respond(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
