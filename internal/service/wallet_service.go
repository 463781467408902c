package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tapconnect/config"
	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"
	"tapconnect/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	vendorRepo ports.VendorRepository
	deviceRepo ports.DeviceRepository
	idempRepo  ports.IdempotencyRepository
	idempCache ports.IdempotencyCache
	transactor ports.DBTransactor
	feedback   ports.FeedbackPublisher
	walletCfg  config.WalletConfig
	ledgerCfg  config.LedgerConfig
	fbTimeout  time.Duration
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	ledgerRepo ports.LedgerRepository,
	vendorRepo ports.VendorRepository,
	deviceRepo ports.DeviceRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	feedback ports.FeedbackPublisher,
	walletCfg config.WalletConfig,
	ledgerCfg config.LedgerConfig,
	feedbackCfg config.FeedbackConfig,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		ledgerRepo: ledgerRepo,
		vendorRepo: vendorRepo,
		deviceRepo: deviceRepo,
		idempRepo:  idempRepo,
		idempCache: idempCache,
		transactor: transactor,
		feedback:   feedback,
		walletCfg:  walletCfg,
		ledgerCfg:  ledgerCfg,
		fbTimeout:  feedbackCfg.PublishTimeout,
		log:        log,
	}
}

// GetBalance returns the balance summary for a user, creating the wallet on
// first contact.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.BalanceSummary, error) {
	wallet, err := s.ensureWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	dailySpent, err := s.dailySpent(ctx, wallet, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &domain.BalanceSummary{
		Balance:    wallet.Balance,
		DailySpent: dailySpent,
		DailyLimit: wallet.DailyLimit,
		Currency:   wallet.Currency,
		CanSpend:   wallet.Active && wallet.Balance > 0 && (wallet.DailyLimit <= 0 || dailySpent < wallet.DailyLimit),
	}, nil
}

// Purchase credits a wallet after an external payment confirmation. Repeated
// calls with the same payment reference return the original entry.
func (s *WalletServiceImpl) Purchase(ctx context.Context, req ports.PurchaseRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.PaymentRef == "" {
		return nil, apperror.Validation("payment_ref is required")
	}

	idempKey := domain.BuildPurchaseKey(req.UserID, req.PaymentRef)

	cached, err := s.checkIdempotency(ctx, idempKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return unmarshalCachedEntry(cached)
	}

	wallet, err := s.ensureWallet(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err = s.withBalanceRetry(ctx, func(ctx context.Context) (bool, error) {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		locked, err := s.ledgerRepo.GetWalletForUpdate(ctx, dbTx, wallet.ID)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
		}
		if locked == nil {
			return false, apperror.ErrNotFound("wallet")
		}

		newBalance := locked.Balance + req.Amount
		ok, err := s.ledgerRepo.UpdateBalance(ctx, dbTx, locked.ID, newBalance, locked.Version)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
		if !ok {
			return true, nil
		}

		now := time.Now().UTC()
		paymentRef := req.PaymentRef
		e := &domain.LedgerEntry{
			ID:          uuid.New(),
			WalletID:    locked.ID,
			Kind:        domain.EntryKindPurchase,
			Amount:      req.Amount,
			Description: "token purchase",
			PaymentRef:  &paymentRef,
			EventID:     req.EventID,
			CreatedAt:   now,
		}
		if err := s.ledgerRepo.AppendEntry(ctx, dbTx, e); err != nil {
			return false, apperror.InternalError(fmt.Errorf("append entry: %w", err))
		}

		respJSON, err := json.Marshal(e)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
		}
		idempLog := &domain.IdempotencyLog{
			Key:          idempKey,
			EntryID:      e.ID,
			ResponseJSON: respJSON,
			CreatedAt:    now,
		}
		if err := s.idempRepo.Create(ctx, dbTx, idempLog); err != nil {
			if errors.Is(err, ports.ErrDuplicateKey) {
				return false, apperror.ErrDuplicatePayment()
			}
			return false, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}

		if err := dbTx.Commit(ctx); err != nil {
			return false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}

		s.cacheResponse(ctx, idempKey, respJSON)
		entry = e
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("user_id", req.UserID.String()).
		Int64("amount", req.Amount).
		Msg("purchase credited")

	return entry, nil
}

// Spend debits a wallet against a vendor. The idempotency key is mandatory:
// a tap retried by the transport must resolve to the original result, never
// a second debit.
func (s *WalletServiceImpl) Spend(ctx context.Context, req ports.SpendRequest) (*ports.SpendResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.IdempotencyKey == "" {
		return nil, apperror.Validation("idempotency_key is required")
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, apperror.Validation("quantity must be positive")
	}

	idempKey := domain.BuildSpendKey(req.UserID, req.IdempotencyKey)

	cached, err := s.checkIdempotency(ctx, idempKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return unmarshalCachedSpend(cached)
	}

	vendor, err := s.vendorRepo.GetVendor(ctx, req.VendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vendor: %w", err))
	}
	if vendor == nil {
		return nil, apperror.ErrNotFound("vendor")
	}
	if vendor.EventID != req.EventID {
		return nil, apperror.ErrEventMismatch()
	}
	if !vendor.AcceptsTokens {
		return nil, apperror.ErrVendorRejectsTokens()
	}

	// Advisory product checks; the conditional decrement inside the
	// transaction is authoritative for stock.
	var product *domain.VendorProduct
	if req.ProductID != nil {
		product, err = s.vendorRepo.GetProduct(ctx, *req.ProductID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get product: %w", err))
		}
		if product == nil {
			return nil, apperror.ErrNotFound("product")
		}
		if product.VendorID != vendor.ID {
			return nil, apperror.Validation("product does not belong to vendor")
		}
		if !product.Available {
			return nil, apperror.ErrProductUnavailable()
		}
		if !product.HasStock(quantity) {
			return nil, apperror.ErrInsufficientStock()
		}
	}

	wallet, err := s.ensureWallet(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var result *ports.SpendResult
	err = s.withBalanceRetry(ctx, func(ctx context.Context) (bool, error) {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		locked, err := s.ledgerRepo.GetWalletForUpdate(ctx, dbTx, wallet.ID)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
		}
		if locked == nil {
			return false, apperror.ErrNotFound("wallet")
		}
		if !locked.Active {
			return false, apperror.ErrWalletInactive()
		}

		// Business rule: sufficient balance
		if locked.Balance < req.Amount {
			return false, apperror.ErrInsufficientBalance()
		}

		// Business rule: daily spend limit
		now := time.Now().UTC()
		if locked.DailyLimit > 0 {
			dailySpent, err := s.dailySpent(ctx, locked, now)
			if err != nil {
				return false, err
			}
			if dailySpent+req.Amount > locked.DailyLimit {
				return false, apperror.ErrDailyLimitExceeded()
			}
		}

		// Conditional stock decrement (tracked stock only)
		if product != nil && product.Stock != nil {
			ok, err := s.vendorRepo.DecrementStock(ctx, dbTx, vendor.ID, product.ID, quantity)
			if err != nil {
				return false, apperror.InternalError(fmt.Errorf("decrement stock: %w", err))
			}
			if !ok {
				return false, apperror.ErrInsufficientStock()
			}
		}

		newBalance := locked.Balance - req.Amount
		ok, err := s.ledgerRepo.UpdateBalance(ctx, dbTx, locked.ID, newBalance, locked.Version)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
		if !ok {
			return true, nil
		}

		description := req.Description
		if description == "" {
			description = "spend at " + vendor.Name
		}
		vendorID := vendor.ID
		eventID := req.EventID
		entry := &domain.LedgerEntry{
			ID:          uuid.New(),
			WalletID:    locked.ID,
			Kind:        domain.EntryKindSpend,
			Amount:      -req.Amount,
			Description: description,
			EventID:     &eventID,
			VendorID:    &vendorID,
			ProductID:   req.ProductID,
			DeviceID:    req.DeviceID,
			CreatedAt:   now,
		}
		if err := s.ledgerRepo.AppendEntry(ctx, dbTx, entry); err != nil {
			return false, apperror.InternalError(fmt.Errorf("append entry: %w", err))
		}

		record := &domain.SpendingRecord{
			ID:          uuid.New(),
			WalletID:    locked.ID,
			VendorID:    vendor.ID,
			ProductID:   req.ProductID,
			TokenAmount: req.Amount,
			Quantity:    quantity,
			EventID:     req.EventID,
			DeviceID:    req.DeviceID,
			CreatedAt:   now,
		}
		if err := s.ledgerRepo.CreateSpendingRecord(ctx, dbTx, record); err != nil {
			return false, apperror.InternalError(fmt.Errorf("create spending record: %w", err))
		}

		res := &ports.SpendResult{Entry: entry, Record: record, Balance: newBalance}
		respJSON, err := json.Marshal(res)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
		}
		idempLog := &domain.IdempotencyLog{
			Key:          idempKey,
			EntryID:      entry.ID,
			ResponseJSON: respJSON,
			CreatedAt:    now,
		}
		if err := s.idempRepo.Create(ctx, dbTx, idempLog); err != nil {
			if errors.Is(err, ports.ErrDuplicateKey) {
				return false, apperror.ErrDuplicatePayment()
			}
			return false, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}

		if err := dbTx.Commit(ctx); err != nil {
			return false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}

		s.cacheResponse(ctx, idempKey, respJSON)
		result = res
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("entry_id", result.Entry.ID.String()).
		Str("user_id", req.UserID.String()).
		Str("vendor_id", req.VendorID.String()).
		Int64("amount", req.Amount).
		Msg("spend committed")

	return result, nil
}

// Reward credits tokens earned inside the platform (achievements, bonuses).
// Rewards never count against the daily spend limit.
func (s *WalletServiceImpl) Reward(ctx context.Context, req ports.RewardRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	wallet, err := s.ensureWallet(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err = s.withBalanceRetry(ctx, func(ctx context.Context) (bool, error) {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		locked, err := s.ledgerRepo.GetWalletForUpdate(ctx, dbTx, wallet.ID)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
		}
		if locked == nil {
			return false, apperror.ErrNotFound("wallet")
		}

		newBalance := locked.Balance + req.Amount
		ok, err := s.ledgerRepo.UpdateBalance(ctx, dbTx, locked.ID, newBalance, locked.Version)
		if err != nil {
			return false, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
		if !ok {
			return true, nil
		}

		description := req.Description
		if description == "" {
			description = "reward"
		}
		e := &domain.LedgerEntry{
			ID:          uuid.New(),
			WalletID:    locked.ID,
			Kind:        domain.EntryKindReward,
			Amount:      req.Amount,
			Description: description,
			EventID:     req.EventID,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.ledgerRepo.AppendEntry(ctx, dbTx, e); err != nil {
			return false, apperror.InternalError(fmt.Errorf("append entry: %w", err))
		}

		if err := dbTx.Commit(ctx); err != nil {
			return false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}

		entry = e
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("user_id", req.UserID.String()).
		Int64("amount", req.Amount).
		Msg("reward credited")

	return entry, nil
}

// ProcessDevicePayment resolves a tag tap at a vendor into a spend. The
// payer and event come from the device binding; a missing idempotency key
// derives from the tap itself so transport retries collapse onto one debit.
func (s *WalletServiceImpl) ProcessDevicePayment(ctx context.Context, req ports.DevicePaymentRequest) (*ports.SpendResult, error) {
	device, err := s.deviceRepo.GetByID(ctx, req.DeviceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get device: %w", err))
	}
	if device == nil {
		return nil, apperror.ErrNotFound("device")
	}
	if !device.Bound() {
		return nil, apperror.ErrDeviceNotBound()
	}

	vendor, err := s.vendorRepo.GetVendor(ctx, req.VendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vendor: %w", err))
	}
	if vendor == nil {
		return nil, apperror.ErrNotFound("vendor")
	}
	if *device.EventID != vendor.EventID {
		return nil, apperror.ErrEventMismatch()
	}

	idempKey := req.IdempotencyKey
	if idempKey == "" {
		idempKey = domain.BuildDeviceSpendKey(req.DeviceID, req.VendorID, time.Now().UTC(), s.ledgerCfg.IdempotencyWindow)
	}

	deviceID := req.DeviceID
	result, err := s.Spend(ctx, ports.SpendRequest{
		UserID:         *device.UserID,
		VendorID:       req.VendorID,
		ProductID:      req.ProductID,
		Amount:         req.Amount,
		Quantity:       req.Quantity,
		EventID:        vendor.EventID,
		DeviceID:       &deviceID,
		IdempotencyKey: idempKey,
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: confirm to the tag and the payer's live feed. Advisory,
	// never fails the payment.
	go s.publishPaymentFeedback(req.DeviceID, *device.UserID, result)

	return result, nil
}

func (s *WalletServiceImpl) publishPaymentFeedback(deviceID string, userID uuid.UUID, result *ports.SpendResult) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fbTimeout)
	defer cancel()

	msg := domain.NewPaymentFeedback(result.Entry.ID, -result.Entry.Amount, result.Balance)
	if err := s.feedback.PublishToDevice(ctx, deviceID, msg); err != nil {
		s.log.Warn().Err(err).Str("device_id", deviceID).Msg("payment feedback publish failed")
	}

	activity := &domain.PaymentActivity{
		OperationID: result.Entry.ID,
		DeviceID:    deviceID,
		Amount:      -result.Entry.Amount,
		Balance:     result.Balance,
	}
	if result.Entry.VendorID != nil {
		activity.VendorID = *result.Entry.VendorID
	}
	if err := s.feedback.PublishToUser(ctx, userID, domain.TopicPayments, activity); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("payment activity publish failed")
	}
}

// ensureWallet fetches the user's wallet, creating it with platform defaults
// on first contact. A creation race resolves by re-reading the winner's row.
func (s *WalletServiceImpl) ensureWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.ledgerRepo.GetWalletByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet != nil {
		return wallet, nil
	}

	now := time.Now().UTC()
	wallet = &domain.Wallet{
		ID:         uuid.New(),
		UserID:     userID,
		Balance:    0,
		Version:    1,
		Currency:   s.walletCfg.DefaultCurrency,
		DailyLimit: s.walletCfg.DefaultDailyLimit,
		Timezone:   s.walletCfg.DefaultTimezone,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.ledgerRepo.CreateWallet(ctx, wallet); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			existing, gerr := s.ledgerRepo.GetWalletByUser(ctx, userID)
			if gerr != nil {
				return nil, apperror.InternalError(fmt.Errorf("get wallet after race: %w", gerr))
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().Str("user_id", userID.String()).Str("wallet_id", wallet.ID.String()).Msg("wallet created")
	return wallet, nil
}

// dailySpent sums SPEND entries since local midnight in the wallet timezone.
// Entries are negative, so the sum is negated into a spent total.
func (s *WalletServiceImpl) dailySpent(ctx context.Context, wallet *domain.Wallet, now time.Time) (int64, error) {
	kind := domain.EntryKindSpend
	since := wallet.StartOfDay(now)
	sum, err := s.ledgerRepo.SumEntries(ctx, wallet.ID, &kind, &since, nil)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("sum daily spend: %w", err))
	}
	return -sum, nil
}

// withBalanceRetry runs attempt until it commits, bounded by the configured
// retry budget. attempt reports true when the balance version moved under it
// and the whole operation must re-validate against fresh state.
func (s *WalletServiceImpl) withBalanceRetry(ctx context.Context, attempt func(context.Context) (bool, error)) error {
	retries := s.ledgerCfg.MaxRetries
	if retries < 1 {
		retries = 1
	}
	for i := 0; i < retries; i++ {
		retry, err := attempt(ctx)
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
		s.log.Debug().Int("attempt", i+1).Msg("balance version moved, retrying")
	}
	return apperror.ErrConflict()
}

// checkIdempotency consults Redis then the DB log. Returns the cached
// response JSON when the key was seen before.
func (s *WalletServiceImpl) checkIdempotency(ctx context.Context, key string) ([]byte, error) {
	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return cached, nil
	}

	idempLog, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog != nil {
		return idempLog.ResponseJSON, nil
	}
	return nil, nil
}

// cacheResponse stores a committed response in Redis (best-effort).
func (s *WalletServiceImpl) cacheResponse(ctx context.Context, key string, respJSON []byte) {
	if err := s.idempCache.Set(ctx, key, respJSON, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}

func unmarshalCachedEntry(data []byte) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{}
	if err := json.Unmarshal(data, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached entry: %w", err))
	}
	return entry, nil
}

func unmarshalCachedSpend(data []byte) (*ports.SpendResult, error) {
	res := &ports.SpendResult{}
	if err := json.Unmarshal(data, res); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached spend: %w", err))
	}
	return res, nil
}
