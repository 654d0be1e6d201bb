package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

// Handler exposes cart operations over HTTP.
type Handler struct {
	repo Repository
}

// NewHandler creates a handler backed by the given repository.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the cart routes on the router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/cart/{userId}", h.addItem).Methods(http.MethodPost)
	r.HandleFunc("/cart/{userId}", h.getCart).Methods(http.MethodGet)
	r.HandleFunc("/cart/{userId}/{productId}", h.removeItem).Methods(http.MethodDelete)
}

// cartResponse is the body returned by cart mutations.
type cartResponse struct {
	Message string `json:"message"`
	Cart    []Line `json:"cart"`
}

// addItem appends a line to the user's cart. The body is accepted
// uncritically: a malformed body decodes to a zero line, the product ID is
// never checked against the catalog and the quantity may be any integer.
// @Summary Add item to cart
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param line body cart.Line true "Cart line"
// @Success 200 {object} cart.cartResponse
// @Router /cart/{userId} [post]
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "cart.addItem")
	defer span.End()

	var line Line
	_ = json.NewDecoder(r.Body).Decode(&line)

	updated, err := h.repo.AddItem(ctx, mux.Vars(r)["userId"], line)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, cartResponse{Message: "Item added", Cart: updated})
}

// removeItem deletes every line matching the product ID. Only a user with
// no cart at all yields 404; emptying a cart is a success.
// @Summary Remove item from cart
// @Produce json
// @Param userId path string true "User ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} cart.cartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/{userId}/{productId} [delete]
func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "cart.removeItem")
	defer span.End()

	productID, _ := strconv.Atoi(mux.Vars(r)["productId"])
	updated, err := h.repo.RemoveItem(ctx, mux.Vars(r)["userId"], productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": "Cart not found"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, cartResponse{Message: "Item removed", Cart: updated})
}

// getCart returns the user's cart, an empty array for an unknown user.
// @Summary Get cart
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} cart.Line
// @Router /cart/{userId} [get]
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "cart.getCart")
	defer span.End()

	lines, err := h.repo.Get(ctx, mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, lines)
}

func respond(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
