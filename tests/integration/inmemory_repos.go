package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The in-memory repos mimic the transactional behaviour of the Postgres
// adapter closely enough for the concurrency properties to hold: writes made
// through a memTx apply immediately and register an undo that runs if the
// transaction rolls back, and GetWalletForUpdate takes a per-wallet mutex
// held until commit, mirroring SELECT ... FOR UPDATE.

// --- Transactional plumbing ---

type memTx struct {
	mu       sync.Mutex
	undos    []func()
	releases []func()
	done     bool
}

func (t *memTx) onRollback(undo func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undos = append(t.undos, undo)
}

func (t *memTx) onFinish(release func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.releases = append(t.releases, release)
}

func (t *memTx) finish(rollback bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	if rollback {
		for i := len(t.undos) - 1; i >= 0; i-- {
			t.undos[i]()
		}
	}
	for _, release := range t.releases {
		release()
	}
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) Commit(ctx context.Context) error          { t.finish(false); return nil }
func (t *memTx) Rollback(ctx context.Context) error        { t.finish(true); return nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor { return &inMemoryTransactor{} }

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{}, nil
}

func asMemTx(tx pgx.Tx) *memTx {
	if m, ok := tx.(*memTx); ok {
		return m
	}
	return &memTx{}
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu          sync.RWMutex
	wallets     map[uuid.UUID]*domain.Wallet
	walletLocks map[uuid.UUID]*sync.Mutex
	entries     []domain.LedgerEntry
	records     []domain.SpendingRecord
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{
		wallets:     make(map[uuid.UUID]*domain.Wallet),
		walletLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (r *inMemoryLedgerRepo) CreateWallet(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wallets {
		if existing.UserID == w.UserID {
			return ports.ErrDuplicateKey
		}
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryLedgerRepo) GetWalletByUser(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryLedgerRepo) rowLock(walletID uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.walletLocks[walletID]
	if !ok {
		lock = &sync.Mutex{}
		r.walletLocks[walletID] = lock
	}
	return lock
}

func (r *inMemoryLedgerRepo) GetWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (*domain.Wallet, error) {
	lock := r.rowLock(walletID)
	lock.Lock()
	asMemTx(tx).onFinish(lock.Unlock)

	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryLedgerRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, newBalance, expectedVersion int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok || w.Version != expectedVersion {
		return false, nil
	}
	prevBalance, prevVersion := w.Balance, w.Version
	w.Balance = newBalance
	w.Version++
	asMemTx(tx).onRollback(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		w.Balance = prevBalance
		w.Version = prevVersion
	})
	return true, nil
}

func (r *inMemoryLedgerRepo) AppendEntry(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	id := entry.ID
	asMemTx(tx).onRollback(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, e := range r.entries {
			if e.ID == id {
				r.entries = append(r.entries[:i], r.entries[i+1:]...)
				break
			}
		}
	})
	return nil
}

func (r *inMemoryLedgerRepo) SumEntries(ctx context.Context, walletID uuid.UUID, kind *domain.EntryKind, since, until *time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for _, e := range r.entries {
		if e.WalletID != walletID {
			continue
		}
		if kind != nil && e.Kind != *kind {
			continue
		}
		if since != nil && e.CreatedAt.Before(*since) {
			continue
		}
		if until != nil && !e.CreatedAt.Before(*until) {
			continue
		}
		sum += e.Amount
	}
	return sum, nil
}

func (r *inMemoryLedgerRepo) CreateSpendingRecord(ctx context.Context, tx pgx.Tx, rec *domain.SpendingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *inMemoryLedgerRepo) GetEntryByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Vendor Repo ---

type inMemoryVendorRepo struct {
	mu       sync.RWMutex
	vendors  map[uuid.UUID]*domain.Vendor
	products map[uuid.UUID]*domain.VendorProduct
}

func newInMemoryVendorRepo() *inMemoryVendorRepo {
	return &inMemoryVendorRepo{
		vendors:  make(map[uuid.UUID]*domain.Vendor),
		products: make(map[uuid.UUID]*domain.VendorProduct),
	}
}

func (r *inMemoryVendorRepo) CreateVendor(ctx context.Context, v *domain.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.vendors[v.ID] = &cp
	return nil
}

func (r *inMemoryVendorRepo) AddProduct(ctx context.Context, p *domain.VendorProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	if p.Stock != nil {
		stock := *p.Stock
		cp.Stock = &stock
	}
	r.products[p.ID] = &cp
	return nil
}

func (r *inMemoryVendorRepo) GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *inMemoryVendorRepo) GetProduct(ctx context.Context, id uuid.UUID) (*domain.VendorProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	if p.Stock != nil {
		stock := *p.Stock
		cp.Stock = &stock
	}
	return &cp, nil
}

func (r *inMemoryVendorRepo) GetVendorsForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Vendor
	for _, v := range r.vendors {
		if v.EventID != eventID {
			continue
		}
		cp := *v
		for _, p := range r.products {
			if p.VendorID == v.ID {
				cp.Products = append(cp.Products, *p)
			}
		}
		sort.Slice(cp.Products, func(i, j int) bool { return cp.Products[i].Position < cp.Products[j].Position })
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *inMemoryVendorRepo) DecrementStock(ctx context.Context, tx pgx.Tx, vendorID, productID uuid.UUID, quantity int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok || p.VendorID != vendorID || p.Stock == nil {
		return false, nil
	}
	if *p.Stock < quantity {
		return false, nil
	}
	*p.Stock -= quantity
	stock := p.Stock
	asMemTx(tx).onRollback(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		*stock += quantity
	})
	return true, nil
}

// --- In-Memory Device Repo ---

type inMemoryDeviceRepo struct {
	mu      sync.RWMutex
	devices map[string]*domain.Device
}

func newInMemoryDeviceRepo() *inMemoryDeviceRepo {
	return &inMemoryDeviceRepo{devices: make(map[string]*domain.Device)}
}

func (r *inMemoryDeviceRepo) Upsert(ctx context.Context, d *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.devices[d.ID] = &cp
	return nil
}

func (r *inMemoryDeviceRepo) GetByID(ctx context.Context, deviceID string) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[deviceID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

// --- In-Memory Connection Repo ---

type connKey struct {
	userID  uuid.UUID
	peerID  uuid.UUID
	eventID uuid.UUID
}

type inMemoryConnectionRepo struct {
	mu       sync.RWMutex
	edges    map[connKey]*domain.Connection
	pairLock sync.Mutex
}

func newInMemoryConnectionRepo() *inMemoryConnectionRepo {
	return &inMemoryConnectionRepo{edges: make(map[connKey]*domain.Connection)}
}

func (r *inMemoryConnectionRepo) UpsertPair(ctx context.Context, tx pgx.Tx, forward, reverse *domain.Connection) error {
	// Serialize whole-pair upserts so concurrent handshakes between the
	// same users strengthen rather than clobber each other.
	r.pairLock.Lock()
	asMemTx(tx).onFinish(r.pairLock.Unlock)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, edge := range []*domain.Connection{forward, reverse} {
		key := connKey{edge.UserID, edge.PeerID, edge.EventID}
		prev := r.edges[key]
		edge.Strength = 1
		if prev != nil {
			edge.Strength = prev.Strength + 1
		}
		cp := *edge
		r.edges[key] = &cp
		asMemTx(tx).onRollback(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if prev == nil {
				delete(r.edges, key)
			} else {
				r.edges[key] = prev
			}
		})
	}
	return nil
}

func (r *inMemoryConnectionRepo) Get(ctx context.Context, userID, peerID, eventID uuid.UUID) (*domain.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	edge, ok := r.edges[connKey{userID, peerID, eventID}]
	if !ok {
		return nil, nil
	}
	cp := *edge
	return &cp, nil
}

func (r *inMemoryConnectionRepo) CountForUser(ctx context.Context, userID, eventID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for key, edge := range r.edges {
		if key.userID == userID && key.eventID == eventID && edge.Status == domain.ConnectionStatusAccepted {
			count++
		}
	}
	return count, nil
}

// --- In-Memory Interaction Repo ---

type inMemoryInteractionRepo struct {
	mu           sync.RWMutex
	interactions []domain.Interaction
}

func newInMemoryInteractionRepo() *inMemoryInteractionRepo {
	return &inMemoryInteractionRepo{}
}

func (r *inMemoryInteractionRepo) Create(ctx context.Context, i *domain.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interactions = append(r.interactions, *i)
	return nil
}

func (r *inMemoryInteractionRepo) ListForEvent(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Interaction
	for i := len(r.interactions) - 1; i >= 0 && len(result) < limit; i-- {
		if r.interactions[i].EventID == eventID {
			result = append(result, r.interactions[i])
		}
	}
	return result, nil
}

// --- In-Memory Achievement Repo ---

type progressKey struct {
	userID        uuid.UUID
	achievementID uuid.UUID
	eventID       uuid.UUID
}

type inMemoryAchievementRepo struct {
	mu           sync.RWMutex
	achievements map[uuid.UUID]*domain.Achievement
	progress     map[progressKey]*domain.UserAchievementProgress
}

func newInMemoryAchievementRepo() *inMemoryAchievementRepo {
	return &inMemoryAchievementRepo{
		achievements: make(map[uuid.UUID]*domain.Achievement),
		progress:     make(map[progressKey]*domain.UserAchievementProgress),
	}
}

func (r *inMemoryAchievementRepo) Create(ctx context.Context, a *domain.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.achievements[a.ID] = &cp
	return nil
}

func (r *inMemoryAchievementRepo) ListActiveForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Achievement
	for _, a := range r.achievements {
		if a.EventID == eventID && a.Active {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (r *inMemoryAchievementRepo) Unlock(ctx context.Context, p *domain.UserAchievementProgress) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := progressKey{p.UserID, p.AchievementID, p.EventID}
	if _, exists := r.progress[key]; exists {
		return false, nil
	}
	cp := *p
	r.progress[key] = &cp
	return true, nil
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.Mutex
	logs map[string]*domain.IdempotencyLog
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]*domain.IdempotencyLog)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.logs[log.Key]; exists {
		return ports.ErrDuplicateKey
	}
	cp := *log
	r.logs[log.Key] = &cp
	key := log.Key
	asMemTx(tx).onRollback(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.logs, key)
	})
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	cp := *log
	return &cp, nil
}
