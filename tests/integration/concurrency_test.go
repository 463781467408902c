package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSpends verifies the no-overspend property: N concurrent
// spends of amount A against balance B commit exactly floor(B/A) times, the
// rest fail with insufficient balance, and the wallet never goes negative.
func TestConcurrentSpends(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	userID := uuid.New()
	eventID := uuid.New()
	vendorID, _ := app.seedVendor(t, eventID, nil)

	code, _ := app.doJSON(t, http.MethodPost, "/api/v1/wallet/purchase", &userID, map[string]any{
		"amount":      10000,
		"payment_ref": "topup-race",
	})
	require.Equal(t, http.StatusCreated, code)

	const (
		workers = 50
		amount  = 800
	)
	var succeeded, insufficient atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			code, resp := app.doJSON(t, http.MethodPost, "/api/v1/wallet/spend", &userID, map[string]any{
				"vendor_id":       vendorID,
				"amount":          amount,
				"event_id":        eventID,
				"idempotency_key": "race-" + uuid.NewString(),
			})
			switch code {
			case http.StatusCreated:
				succeeded.Add(1)
			case http.StatusPaymentRequired:
				assert.Equal(t, "WAL_001", resp["error_code"])
				insufficient.Add(1)
			default:
				t.Errorf("unexpected status %d: %v", code, resp)
			}
		}(i)
	}
	wg.Wait()

	// floor(10000 / 800) = 12 spends fit.
	assert.Equal(t, int64(12), succeeded.Load())
	assert.Equal(t, int64(workers-12), insufficient.Load())

	wallet, err := app.ledgerRepo.GetWalletByUser(t.Context(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000-12*amount), wallet.Balance)

	// The balance reconciles against the ledger.
	sum, err := app.ledgerRepo.SumEntries(t.Context(), wallet.ID, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, wallet.Balance, sum)
}

// TestConcurrentStockRace verifies that a product with one unit of tracked
// stock sells exactly once no matter how many buyers race for it.
func TestConcurrentStockRace(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	eventID := uuid.New()
	stock := 1
	vendorID, productID := app.seedVendor(t, eventID, &stock)

	const workers = 20
	users := make([]uuid.UUID, workers)
	for i := range users {
		users[i] = uuid.New()
		code, _ := app.doJSON(t, http.MethodPost, "/api/v1/wallet/purchase", &users[i], map[string]any{
			"amount":      10000,
			"payment_ref": "topup-stock-" + users[i].String(),
		})
		require.Equal(t, http.StatusCreated, code)
	}

	var sold, outOfStock atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			code, resp := app.doJSON(t, http.MethodPost, "/api/v1/wallet/spend", &users[n], map[string]any{
				"vendor_id":       vendorID,
				"product_id":      productID,
				"amount":          800,
				"event_id":        eventID,
				"idempotency_key": "stock-" + uuid.NewString(),
			})
			switch code {
			case http.StatusCreated:
				sold.Add(1)
			case http.StatusConflict:
				assert.Equal(t, "VEN_003", resp["error_code"])
				outOfStock.Add(1)
			default:
				t.Errorf("unexpected status %d: %v", code, resp)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), sold.Load())
	assert.Equal(t, int64(workers-1), outOfStock.Load())

	product, err := app.vendorRepo.GetProduct(t.Context(), productID)
	require.NoError(t, err)
	require.NotNil(t, product.Stock)
	assert.Equal(t, 0, *product.Stock)
}

// TestConcurrentPurchaseSameReference verifies purchase idempotence under
// contention: the same payment reference replayed in parallel credits the
// wallet exactly once.
func TestConcurrentPurchaseSameReference(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	userID := uuid.New()

	const workers = 20
	var created, duplicate atomic.Int64
	entryIDs := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			code, resp := app.doJSON(t, http.MethodPost, "/api/v1/wallet/purchase", &userID, map[string]any{
				"amount":      10000,
				"payment_ref": "shared-ref",
			})
			switch code {
			case http.StatusCreated:
				created.Add(1)
				entryIDs[n] = resp["data"].(map[string]interface{})["id"].(string)
			case http.StatusConflict:
				assert.Equal(t, "WAL_003", resp["error_code"])
				duplicate.Add(1)
			default:
				t.Errorf("unexpected status %d: %v", code, resp)
			}
		}(i)
	}
	wg.Wait()

	// Losers see either the duplicate error or an idempotent replay of the
	// winner's entry; in both cases the credit lands once.
	require.GreaterOrEqual(t, created.Load(), int64(1))
	assert.Equal(t, int64(workers), created.Load()+duplicate.Load())

	var winner string
	for _, id := range entryIDs {
		if id == "" {
			continue
		}
		if winner == "" {
			winner = id
		}
		assert.Equal(t, winner, id, "all successful responses must replay the same entry")
	}

	wallet, err := app.ledgerRepo.GetWalletByUser(t.Context(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), wallet.Balance)

	sum, err := app.ledgerRepo.SumEntries(t.Context(), wallet.ID, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), sum)
}

// TestConcurrentHandshakesUnlockOnce verifies the at-most-once unlock
// discipline: repeated parallel handshakes between the same pair unlock the
// networking achievement once per user and pay its reward exactly once.
func TestConcurrentHandshakesUnlockOnce(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	eventID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	require.NoError(t, app.achievementRepo.Create(t.Context(), &domain.Achievement{
		ID:      uuid.New(),
		EventID: eventID,
		Name:    "First Contact",
		Condition: domain.AchievementCondition{
			Class:          domain.ConditionClassNetworking,
			MinConnections: 1,
		},
		RewardTokens: 500,
		Active:       true,
	}))

	for _, d := range []struct {
		id     string
		userID uuid.UUID
	}{{"band-a", userA}, {"band-b", userB}} {
		code, _ := app.doJSON(t, http.MethodPost, "/api/v1/devices/assign", nil, map[string]any{
			"device_id": d.id,
			"user_id":   d.userID,
			"event_id":  eventID,
			"profile":   map[string]any{"name": d.id, "interests": []string{"go"}},
		})
		require.Equal(t, http.StatusCreated, code)
	}

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, resp := app.doJSON(t, http.MethodPost, "/api/v1/devices/handshake", nil, map[string]any{
				"device_id":      "band-a",
				"peer_device_id": "band-b",
			})
			if code != http.StatusCreated {
				t.Errorf("unexpected status %d: %v", code, resp)
			}
		}()
	}
	wg.Wait()

	// Reward paid exactly once per participant despite ten evaluations.
	summaryA, err := app.walletSvc.GetBalance(t.Context(), userA)
	require.NoError(t, err)
	assert.Equal(t, int64(500), summaryA.Balance)

	summaryB, err := app.walletSvc.GetBalance(t.Context(), userB)
	require.NoError(t, err)
	assert.Equal(t, int64(500), summaryB.Balance)

	// Both edges survived; every handshake's increment landed.
	forward, err := app.connRepo.Get(t.Context(), userA, userB, eventID)
	require.NoError(t, err)
	reverse, err := app.connRepo.Get(t.Context(), userB, userA, eventID)
	require.NoError(t, err)
	require.NotNil(t, forward)
	require.NotNil(t, reverse)
	assert.Equal(t, workers, forward.Strength)
	assert.Equal(t, workers, reverse.Strength)
}

// TestConcurrentRepeatHandshakesStrength verifies the strength counter is
// lost-update safe: N simultaneous repeat handshakes between one pair commit
// exactly N increments on both directional edges.
func TestConcurrentRepeatHandshakesStrength(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	eventID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	for _, d := range []struct {
		id     string
		userID uuid.UUID
	}{{"band-s1", userA}, {"band-s2", userB}} {
		code, _ := app.doJSON(t, http.MethodPost, "/api/v1/devices/assign", nil, map[string]any{
			"device_id": d.id,
			"user_id":   d.userID,
			"event_id":  eventID,
			"profile":   map[string]any{"name": d.id, "interests": []string{"go"}},
		})
		require.Equal(t, http.StatusCreated, code)
	}

	const workers = 40
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			code, resp := app.doJSON(t, http.MethodPost, "/api/v1/devices/handshake", nil, map[string]any{
				"device_id":      "band-s1",
				"peer_device_id": "band-s2",
			})
			if code != http.StatusCreated {
				t.Errorf("unexpected status %d: %v", code, resp)
			}
		}()
	}
	close(start)
	wg.Wait()

	forward, err := app.connRepo.Get(t.Context(), userA, userB, eventID)
	require.NoError(t, err)
	reverse, err := app.connRepo.Get(t.Context(), userB, userA, eventID)
	require.NoError(t, err)
	require.NotNil(t, forward)
	require.NotNil(t, reverse)
	assert.Equal(t, workers, forward.Strength)
	assert.Equal(t, workers, reverse.Strength)
}
