package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/qdryclean/qadmin/internal/adapter/backend"
	domainErrors "github.com/qdryclean/qadmin/internal/domain/errors"
	"github.com/qdryclean/qadmin/internal/domain/model"
)

// OrderUseCase drives the paged order list: staged search, page navigation
// and creation-then-refresh. It exclusively owns the paging state and the
// last received page; views read snapshots only.
//
// Responses are guarded by a monotonic sequence number: a response is applied
// only if no later fetch has been issued, so a slow reply to an old search or
// page can never clobber a newer one.
type OrderUseCase struct {
	client   backend.Client
	pageSize int
	logger   *slog.Logger

	mu            sync.Mutex
	draftSearch   string
	appliedSearch string
	page          int
	result        *model.PageResult
	loaded        bool
	inflight      int
	lastError     string
	seq           uint64

	formOpen  bool
	formDraft model.OrderDraft
	formError string
}

// OrderView is an immutable snapshot of the controller state for rendering.
type OrderView struct {
	DraftSearch   string           `json:"draftSearch"`
	AppliedSearch string           `json:"appliedSearch"`
	Page          int              `json:"page"`
	PageSize      int              `json:"pageSize"`
	Loading       bool             `json:"loading"`
	LastError     string           `json:"lastError"`
	Result        model.PageResult `json:"result"`
	FormOpen      bool             `json:"formOpen"`
	FormDraft     model.OrderDraft `json:"formDraft"`
	FormError     string           `json:"formError"`
}

// NewOrderUseCase constructs the order list controller.
func NewOrderUseCase(client backend.Client, pageSize int, logger *slog.Logger) *OrderUseCase {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &OrderUseCase{
		client:   client,
		pageSize: pageSize,
		logger:   logger,
		page:     1,
	}
}

// SetDraftSearch records in-progress search text. Pure local state, no
// network effect.
func (u *OrderUseCase) SetDraftSearch(text string) {
	u.mu.Lock()
	u.draftSearch = text
	u.mu.Unlock()
}

// ApplySearch commits the draft search: the trimmed term and the page reset
// to 1 are applied in one step before the fetch is issued, so the fetch can
// never see a stale page number.
func (u *OrderUseCase) ApplySearch(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.appliedSearch = strings.TrimSpace(u.draftSearch)
	u.page = 1
	return u.fetchLocked(ctx)
}

// GoToPage clamps the target into [1, totalPages] and fetches it with the
// unchanged applied search. Landing on the current page is a no-op.
func (u *OrderUseCase) GoToPage(ctx context.Context, target int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	total := 1
	if u.result != nil && u.result.TotalPages > 0 {
		total = u.result.TotalPages
	}
	if target < 1 {
		target = 1
	}
	if target > total {
		target = total
	}
	if target == u.page {
		return nil
	}

	u.page = target
	return u.fetchLocked(ctx)
}

// Refresh re-fetches the current page with the current applied search.
func (u *OrderUseCase) Refresh(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.fetchLocked(ctx)
}

// EnsureLoaded fetches the first page once; later calls are no-ops.
func (u *OrderUseCase) EnsureLoaded(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.loaded || u.inflight > 0 {
		return nil
	}
	return u.fetchLocked(ctx)
}

// OpenForm opens the creation form, keeping previously entered values.
func (u *OrderUseCase) OpenForm() {
	u.mu.Lock()
	u.formOpen = true
	u.mu.Unlock()
}

// CloseForm dismisses the creation form without losing entered values.
func (u *OrderUseCase) CloseForm() {
	u.mu.Lock()
	u.formOpen = false
	u.formError = ""
	u.mu.Unlock()
}

// SetForm replaces the creation draft with the entered values.
func (u *OrderUseCase) SetForm(draft model.OrderDraft) {
	u.mu.Lock()
	u.formDraft = draft
	u.mu.Unlock()
}

// Create validates the draft locally, submits it and on success closes the
// form, resets its fields and re-fetches the current page so the list shows
// the new item and the updated total. On failure paging state and the
// entered values stay untouched so the user can correct and resubmit.
func (u *OrderUseCase) Create(ctx context.Context) error {
	u.mu.Lock()
	draft := u.formDraft

	if err := validateDraft(draft); err != nil {
		u.formError = domainErrors.UserMessage(err)
		u.mu.Unlock()
		return err
	}
	u.mu.Unlock()

	err := u.client.CreateOrder(ctx, draft)

	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		if msg := domainErrors.UserMessage(err); msg != "" {
			u.formError = msg
		}
		return err
	}

	u.formOpen = false
	u.formDraft = model.OrderDraft{}
	u.formError = ""

	// Creation succeeded even if the refresh below fails; a refresh failure
	// surfaces through lastError like any other list fetch.
	if err := u.fetchLocked(ctx); err != nil {
		u.logger.Warn("list refresh after create failed", slog.String("error", err.Error()))
	}
	return nil
}

// Snapshot returns a deep copy of the current state.
func (u *OrderUseCase) Snapshot() OrderView {
	u.mu.Lock()
	defer u.mu.Unlock()

	view := OrderView{
		DraftSearch:   u.draftSearch,
		AppliedSearch: u.appliedSearch,
		Page:          u.page,
		PageSize:      u.pageSize,
		Loading:       u.inflight > 0,
		LastError:     u.lastError,
		FormOpen:      u.formOpen,
		FormDraft:     u.formDraft,
		FormError:     u.formError,
	}
	if u.result != nil {
		view.Result = u.result.Clone()
	} else {
		view.Result = model.PageResult{Page: u.page, PageSize: u.pageSize}
	}
	if u.formDraft.Notes != nil {
		notes := make([]string, len(u.formDraft.Notes))
		copy(notes, u.formDraft.Notes)
		view.FormDraft.Notes = notes
	}
	if u.formDraft.Items != nil {
		items := make([]model.OrderItem, len(u.formDraft.Items))
		copy(items, u.formDraft.Items)
		view.FormDraft.Items = items
	}
	return view
}

// fetchLocked issues exactly one list request for the current query. Called
// with the mutex held; the lock is released for the network call and
// reacquired to apply the response. The caller's deferred unlock pairs with
// the lock held on return.
func (u *OrderUseCase) fetchLocked(ctx context.Context) error {
	u.seq++
	seq := u.seq
	query := model.PageQuery{Page: u.page, PageSize: u.pageSize, Search: u.appliedSearch}
	u.inflight++
	u.mu.Unlock()

	result, err := u.client.Orders(ctx, query)

	u.mu.Lock()
	u.inflight--

	if seq != u.seq {
		// A newer fetch was issued while this one was in flight; its
		// response governs, this one is discarded.
		return nil
	}

	if err != nil {
		// Stale-but-visible: the previous page stays on screen. An expired
		// session produces no banner text; the forced navigation handles it.
		if !errors.Is(err, domainErrors.ErrSessionExpired) {
			u.lastError = domainErrors.UserMessage(err)
		}
		return err
	}

	u.result = result
	u.loaded = true
	u.lastError = ""
	if result.Page > 0 {
		u.page = result.Page
	}
	return nil
}

func validateDraft(draft model.OrderDraft) error {
	if draft.CustomerID == 0 {
		return &domainErrors.ValidationError{Field: "customerId"}
	}
	if draft.ReceiptNumber == 0 {
		return &domainErrors.ValidationError{Field: "receiptNumber"}
	}
	return nil
}
