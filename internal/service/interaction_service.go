package service

import (
	"context"
	"fmt"
	"time"

	"tapconnect/config"
	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"
	"tapconnect/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InteractionServiceImpl implements ports.InteractionService.
type InteractionServiceImpl struct {
	deviceRepo      ports.DeviceRepository
	connRepo        ports.ConnectionRepository
	interactionRepo ports.InteractionRepository
	evaluator       ports.AchievementEvaluator
	feedback        ports.FeedbackPublisher
	transactor      ports.DBTransactor
	fbTimeout       time.Duration
	log             zerolog.Logger
}

// NewInteractionService creates a new InteractionServiceImpl.
func NewInteractionService(
	deviceRepo ports.DeviceRepository,
	connRepo ports.ConnectionRepository,
	interactionRepo ports.InteractionRepository,
	evaluator ports.AchievementEvaluator,
	feedback ports.FeedbackPublisher,
	transactor ports.DBTransactor,
	feedbackCfg config.FeedbackConfig,
	log zerolog.Logger,
) *InteractionServiceImpl {
	return &InteractionServiceImpl{
		deviceRepo:      deviceRepo,
		connRepo:        connRepo,
		interactionRepo: interactionRepo,
		evaluator:       evaluator,
		feedback:        feedback,
		transactor:      transactor,
		fbTimeout:       feedbackCfg.PublishTimeout,
		log:             log,
	}
}

// Handshake turns an exchanged pair of device ids into a committed,
// symmetric social connection. Both edges land in one transactional unit; a
// repeat handshake between the same pair strengthens the edge instead of
// duplicating it.
func (s *InteractionServiceImpl) Handshake(ctx context.Context, req ports.HandshakeRequest) (*ports.HandshakeResult, error) {
	if req.DeviceID == req.PeerDeviceID {
		return nil, apperror.ErrSelfConnection()
	}

	device, peer, err := s.resolvePair(ctx, req.DeviceID, req.PeerDeviceID)
	if err != nil {
		return nil, err
	}

	userID := *device.UserID
	peerID := *peer.UserID
	eventID := *device.EventID

	if userID == peerID {
		// Two tags bound to the same account cannot connect to themselves.
		return nil, apperror.ErrSelfConnection()
	}
	if eventID != *peer.EventID {
		return nil, apperror.ErrEventMismatch()
	}

	existing, err := s.connRepo.Get(ctx, userID, peerID, eventID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get connection: %w", err))
	}
	reverse, err := s.connRepo.Get(ctx, peerID, userID, eventID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get reverse connection: %w", err))
	}
	if (existing != nil && existing.Status == domain.ConnectionStatusBlocked) ||
		(reverse != nil && reverse.Status == domain.ConnectionStatusBlocked) {
		return nil, apperror.ErrConnectionBlocked()
	}

	score := domain.CompatibilityScore(device.Interests(), peer.Interests())
	now := time.Now().UTC()

	// Strength is owned by the store: UpsertPair inserts at 1 or increments
	// atomically and writes the committed value back onto the edges.
	forwardEdge := &domain.Connection{
		UserID:    userID,
		PeerID:    peerID,
		EventID:   eventID,
		Status:    domain.ConnectionStatusAccepted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	reverseEdge := &domain.Connection{
		UserID:    peerID,
		PeerID:    userID,
		EventID:   eventID,
		Status:    domain.ConnectionStatusAccepted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.connRepo.UpsertPair(ctx, dbTx, forwardEdge, reverseEdge); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert connection pair: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	operationID := uuid.New()
	s.recordInteraction(ctx, &domain.Interaction{
		ID:           operationID,
		Kind:         domain.InteractionKindHandshake,
		DeviceID:     device.ID,
		PeerDeviceID: &peer.ID,
		UserID:       &userID,
		PeerUserID:   &peerID,
		EventID:      eventID,
		Score:        &score,
		CreatedAt:    now,
	})

	// Post-commit: evaluate both participants. A failure here never rolls
	// back the committed connection.
	unlocked, err := s.evaluator.Evaluate(ctx, userID, eventID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("achievement evaluation failed")
		unlocked = nil
	}
	if _, err := s.evaluator.Evaluate(ctx, peerID, eventID); err != nil {
		s.log.Warn().Err(err).Str("user_id", peerID.String()).Msg("peer achievement evaluation failed")
	}

	go s.publishHandshakeFeedback(operationID, score, device, peer, forwardEdge)

	s.log.Info().
		Str("device_id", device.ID).
		Str("peer_device_id", peer.ID).
		Int("score", score).
		Int("strength", forwardEdge.Strength).
		Msg("handshake committed")

	return &ports.HandshakeResult{
		Connection: forwardEdge,
		Score:      score,
		Unlocked:   unlocked,
	}, nil
}

// HandleTap records a presence tap from a bound device. Taps are analytics
// only; they never mutate the social graph.
func (s *InteractionServiceImpl) HandleTap(ctx context.Context, deviceID string, eventID uuid.UUID) error {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get device: %w", err))
	}
	if device == nil {
		return apperror.ErrNotFound("device")
	}
	if !device.Bound() {
		return apperror.ErrDeviceNotBound()
	}
	if *device.EventID != eventID {
		return apperror.ErrEventMismatch()
	}

	interaction := &domain.Interaction{
		ID:        uuid.New(),
		Kind:      domain.InteractionKindTap,
		DeviceID:  device.ID,
		UserID:    device.UserID,
		EventID:   eventID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return apperror.InternalError(fmt.Errorf("record tap: %w", err))
	}
	return nil
}

// AssignDevice (re)binds a device to a user at an event and pushes the
// profile snapshot back to the tag.
func (s *InteractionServiceImpl) AssignDevice(ctx context.Context, req ports.AssignDeviceRequest) (*domain.Device, error) {
	if req.DeviceID == "" {
		return nil, apperror.Validation("device_id is required")
	}

	now := time.Now().UTC()
	userID := req.UserID
	eventID := req.EventID
	profile := req.Profile
	device := &domain.Device{
		ID:        req.DeviceID,
		UserID:    &userID,
		EventID:   &eventID,
		Profile:   &profile,
		BoundAt:   &now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert device: %w", err))
	}

	go s.publishProfileSync(device.ID, &profile)

	s.log.Info().
		Str("device_id", device.ID).
		Str("user_id", userID.String()).
		Str("event_id", eventID.String()).
		Msg("device bound")

	return device, nil
}

// resolvePair loads and validates both devices of a handshake.
func (s *InteractionServiceImpl) resolvePair(ctx context.Context, deviceID, peerDeviceID string) (*domain.Device, *domain.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("get device: %w", err))
	}
	if device == nil {
		return nil, nil, apperror.ErrNotFound("device")
	}
	if !device.Bound() {
		return nil, nil, apperror.ErrDeviceNotBound()
	}

	peer, err := s.deviceRepo.GetByID(ctx, peerDeviceID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("get peer device: %w", err))
	}
	if peer == nil {
		return nil, nil, apperror.ErrNotFound("peer device")
	}
	if !peer.Bound() {
		return nil, nil, apperror.ErrDeviceNotBound()
	}

	return device, peer, nil
}

// recordInteraction writes the analytics row. Best-effort: the connection is
// already durable.
func (s *InteractionServiceImpl) recordInteraction(ctx context.Context, interaction *domain.Interaction) {
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		s.log.Warn().Err(err).Str("device_id", interaction.DeviceID).Msg("failed to record interaction")
	}
}

func (s *InteractionServiceImpl) publishHandshakeFeedback(operationID uuid.UUID, score int, device, peer *domain.Device, edge *domain.Connection) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fbTimeout)
	defer cancel()

	if err := s.feedback.PublishToDevice(ctx, device.ID, domain.NewHandshakeFeedback(operationID, score, profileName(peer))); err != nil {
		s.log.Warn().Err(err).Str("device_id", device.ID).Msg("handshake feedback publish failed")
	}
	if err := s.feedback.PublishToDevice(ctx, peer.ID, domain.NewHandshakeFeedback(operationID, score, profileName(device))); err != nil {
		s.log.Warn().Err(err).Str("device_id", peer.ID).Msg("handshake feedback publish failed")
	}

	// Fan out to event dashboards watching the handshake stream.
	activity := &domain.HandshakeActivity{
		OperationID: operationID,
		EventID:     edge.EventID,
		UserID:      edge.UserID,
		PeerUserID:  edge.PeerID,
		Score:       score,
		Strength:    edge.Strength,
	}
	if err := s.feedback.PublishToEvent(ctx, edge.EventID, domain.TopicHandshakes, activity); err != nil {
		s.log.Warn().Err(err).Str("event_id", edge.EventID.String()).Msg("handshake activity publish failed")
	}
}

func (s *InteractionServiceImpl) publishProfileSync(deviceID string, profile *domain.ProfileSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fbTimeout)
	defer cancel()

	if err := s.feedback.PublishToDevice(ctx, deviceID, domain.NewProfileSyncFeedback(uuid.New(), profile)); err != nil {
		s.log.Warn().Err(err).Str("device_id", deviceID).Msg("profile sync publish failed")
	}
}

func profileName(d *domain.Device) string {
	if d.Profile == nil {
		return ""
	}
	return d.Profile.Name
}
