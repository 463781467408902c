package service

import (
	"context"
	"testing"
	"time"

	"tapconnect/config"
	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"
	"tapconnect/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type interactionTestDeps struct {
	svc             *InteractionServiceImpl
	deviceRepo      *mocks.MockDeviceRepository
	connRepo        *mocks.MockConnectionRepository
	interactionRepo *mocks.MockInteractionRepository
	achievementRepo *mocks.MockAchievementRepository
	evaluator       *AchievementServiceImpl
	feedback        *mocks.MockFeedbackPublisher
	transactor      *mocks.MockDBTransactor
	ctrl            *gomock.Controller
}

func setupInteractionService(t *testing.T) *interactionTestDeps {
	ctrl := gomock.NewController(t)
	d := &interactionTestDeps{
		deviceRepo:      mocks.NewMockDeviceRepository(ctrl),
		connRepo:        mocks.NewMockConnectionRepository(ctrl),
		interactionRepo: mocks.NewMockInteractionRepository(ctrl),
		achievementRepo: mocks.NewMockAchievementRepository(ctrl),
		feedback:        mocks.NewMockFeedbackPublisher(ctrl),
		transactor:      mocks.NewMockDBTransactor(ctrl),
		ctrl:            ctrl,
	}
	d.evaluator = NewAchievementService(d.achievementRepo, d.connRepo, nil, zerolog.Nop())
	d.svc = NewInteractionService(
		d.deviceRepo, d.connRepo, d.interactionRepo, d.evaluator,
		d.feedback, d.transactor,
		config.FeedbackConfig{PublishTimeout: 2 * time.Second},
		zerolog.Nop(),
	)
	return d
}

func handshakeFixture() (*domain.Device, *domain.Device, uuid.UUID) {
	eventID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()
	now := time.Now().UTC()
	a := &domain.Device{
		ID: "TAG-A", UserID: &userA, EventID: &eventID, BoundAt: &now,
		Profile: &domain.ProfileSnapshot{Name: "Alex", Interests: []string{"go", "music", "coffee"}},
	}
	b := &domain.Device{
		ID: "TAG-B", UserID: &userB, EventID: &eventID, BoundAt: &now,
		Profile: &domain.ProfileSnapshot{Name: "Sam", Interests: []string{"go", "music", "hiking"}},
	}
	return a, b, eventID
}

// ==================== Handshake Tests ====================

func TestInteractionService_Handshake_Success(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	a, b, eventID := handshakeFixture()
	tx := &mockTx{}

	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-A").Return(a, nil)
	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-B").Return(b, nil)
	d.connRepo.EXPECT().Get(ctx, *a.UserID, *b.UserID, eventID).Return(nil, nil)
	d.connRepo.EXPECT().Get(ctx, *b.UserID, *a.UserID, eventID).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.connRepo.EXPECT().UpsertPair(ctx, tx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, forward, reverse *domain.Connection) error {
			assert.Equal(t, forward.UserID, reverse.PeerID)
			assert.Equal(t, forward.PeerID, reverse.UserID)
			assert.Equal(t, domain.ConnectionStatusAccepted, forward.Status)
			forward.Strength = 1
			reverse.Strength = 1
			return nil
		})
	d.interactionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	// Post-commit evaluation for both participants; nothing unlocks.
	d.connRepo.EXPECT().CountForUser(ctx, *a.UserID, eventID).Return(2, nil)
	d.connRepo.EXPECT().CountForUser(ctx, *b.UserID, eventID).Return(2, nil)
	d.achievementRepo.EXPECT().ListActiveForEvent(ctx, eventID).Return(nil, nil).Times(2)

	published := make(chan string, 2)
	d.feedback.EXPECT().PublishToDevice(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, deviceID string, msg *domain.FeedbackMessage) error {
			assert.Equal(t, domain.FeedbackTypeHandshake, msg.Type)
			published <- deviceID
			return nil
		}).Times(2)

	announced := make(chan *domain.HandshakeActivity, 1)
	d.feedback.EXPECT().PublishToEvent(gomock.Any(), eventID, domain.TopicHandshakes, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, payload any) error {
			announced <- payload.(*domain.HandshakeActivity)
			return nil
		})

	result, err := d.svc.Handshake(ctx, ports.HandshakeRequest{DeviceID: "TAG-A", PeerDeviceID: "TAG-B"})
	require.NoError(t, err)
	require.NotNil(t, result)
	// {go, music, coffee} vs {go, music, hiking}: 2 shared of 4 -> 50.
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, *a.UserID, result.Connection.UserID)
	assert.Equal(t, *b.UserID, result.Connection.PeerID)

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-published:
			got[id] = true
		case <-time.After(time.Second):
			t.Fatal("handshake feedback was not published to both devices")
		}
	}
	assert.True(t, got["TAG-A"])
	assert.True(t, got["TAG-B"])

	select {
	case activity := <-announced:
		assert.Equal(t, *a.UserID, activity.UserID)
		assert.Equal(t, *b.UserID, activity.PeerUserID)
		assert.Equal(t, 50, activity.Score)
		assert.Equal(t, 1, activity.Strength)
	case <-time.After(time.Second):
		t.Fatal("handshake activity was not published to the event channel")
	}
}

func TestInteractionService_Handshake_RepeatStrengthensEdge(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	a, b, eventID := handshakeFixture()
	tx := &mockTx{}

	existing := &domain.Connection{
		UserID: *a.UserID, PeerID: *b.UserID, EventID: eventID,
		Strength: 2, Status: domain.ConnectionStatusAccepted,
	}

	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-A").Return(a, nil)
	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-B").Return(b, nil)
	d.connRepo.EXPECT().Get(ctx, *a.UserID, *b.UserID, eventID).Return(existing, nil)
	d.connRepo.EXPECT().Get(ctx, *b.UserID, *a.UserID, eventID).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	// The store owns the increment: the repo reports the committed strength.
	d.connRepo.EXPECT().UpsertPair(ctx, tx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, forward, reverse *domain.Connection) error {
			forward.Strength = 3
			reverse.Strength = 3
			return nil
		})
	d.interactionRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.connRepo.EXPECT().CountForUser(ctx, gomock.Any(), eventID).Return(1, nil).Times(2)
	d.achievementRepo.EXPECT().ListActiveForEvent(ctx, eventID).Return(nil, nil).Times(2)

	published := make(chan struct{}, 3)
	d.feedback.EXPECT().PublishToDevice(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ *domain.FeedbackMessage) error {
			published <- struct{}{}
			return nil
		}).Times(2)
	d.feedback.EXPECT().PublishToEvent(gomock.Any(), eventID, domain.TopicHandshakes, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, payload any) error {
			assert.Equal(t, 3, payload.(*domain.HandshakeActivity).Strength)
			published <- struct{}{}
			return nil
		})

	result, err := d.svc.Handshake(ctx, ports.HandshakeRequest{DeviceID: "TAG-A", PeerDeviceID: "TAG-B"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Connection.Strength)

	for i := 0; i < 3; i++ {
		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("handshake feedback was not published")
		}
	}
}

func TestInteractionService_Handshake_SelfConnection(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	result, err := d.svc.Handshake(context.Background(), ports.HandshakeRequest{
		DeviceID: "TAG-A", PeerDeviceID: "TAG-A",
	})
	assert.Nil(t, result)
	assertAppError(t, err, "CON_001")
}

func TestInteractionService_Handshake_SameUserTwoDevices(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	a, b, _ := handshakeFixture()
	b.UserID = a.UserID // both tags bound to one account

	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-A").Return(a, nil)
	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-B").Return(b, nil)

	result, err := d.svc.Handshake(ctx, ports.HandshakeRequest{DeviceID: "TAG-A", PeerDeviceID: "TAG-B"})
	assert.Nil(t, result)
	assertAppError(t, err, "CON_001")
}

func TestInteractionService_Handshake_EventMismatch(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	a, b, _ := handshakeFixture()
	otherEvent := uuid.New()
	b.EventID = &otherEvent

	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-A").Return(a, nil)
	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-B").Return(b, nil)

	result, err := d.svc.Handshake(ctx, ports.HandshakeRequest{DeviceID: "TAG-A", PeerDeviceID: "TAG-B"})
	assert.Nil(t, result)
	assertAppError(t, err, "DEV_002")
}

func TestInteractionService_Handshake_Blocked(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	a, b, eventID := handshakeFixture()

	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-A").Return(a, nil)
	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-B").Return(b, nil)
	d.connRepo.EXPECT().Get(ctx, *a.UserID, *b.UserID, eventID).Return(nil, nil)
	d.connRepo.EXPECT().Get(ctx, *b.UserID, *a.UserID, eventID).Return(&domain.Connection{
		UserID: *b.UserID, PeerID: *a.UserID, EventID: eventID,
		Status: domain.ConnectionStatusBlocked,
	}, nil)

	result, err := d.svc.Handshake(ctx, ports.HandshakeRequest{DeviceID: "TAG-A", PeerDeviceID: "TAG-B"})
	assert.Nil(t, result)
	assertAppError(t, err, "CON_002")
}

func TestInteractionService_Handshake_UnboundPeer(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	a, _, _ := handshakeFixture()

	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-A").Return(a, nil)
	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-B").Return(&domain.Device{ID: "TAG-B"}, nil)

	result, err := d.svc.Handshake(ctx, ports.HandshakeRequest{DeviceID: "TAG-A", PeerDeviceID: "TAG-B"})
	assert.Nil(t, result)
	assertAppError(t, err, "DEV_001")
}

// ==================== HandleTap Tests ====================

func TestInteractionService_HandleTap_Success(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	a, _, eventID := handshakeFixture()

	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-A").Return(a, nil)
	d.interactionRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, interaction *domain.Interaction) error {
			assert.Equal(t, domain.InteractionKindTap, interaction.Kind)
			assert.Equal(t, "TAG-A", interaction.DeviceID)
			assert.Equal(t, eventID, interaction.EventID)
			return nil
		})

	err := d.svc.HandleTap(ctx, "TAG-A", eventID)
	require.NoError(t, err)
}

func TestInteractionService_HandleTap_UnknownDevice(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.deviceRepo.EXPECT().GetByID(ctx, "TAG-X").Return(nil, nil)

	err := d.svc.HandleTap(ctx, "TAG-X", uuid.New())
	assertAppError(t, err, "GEN_001")
}

// ==================== AssignDevice Tests ====================

func TestInteractionService_AssignDevice_Success(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()
	profile := domain.ProfileSnapshot{Name: "Alex", Interests: []string{"go"}, Status: "open to chat"}

	d.deviceRepo.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, device *domain.Device) error {
			assert.Equal(t, "TAG-NEW", device.ID)
			assert.Equal(t, userID, *device.UserID)
			assert.Equal(t, eventID, *device.EventID)
			require.NotNil(t, device.Profile)
			assert.Equal(t, "Alex", device.Profile.Name)
			return nil
		})

	published := make(chan *domain.FeedbackMessage, 1)
	d.feedback.EXPECT().PublishToDevice(gomock.Any(), "TAG-NEW", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg *domain.FeedbackMessage) error {
			published <- msg
			return nil
		})

	device, err := d.svc.AssignDevice(ctx, ports.AssignDeviceRequest{
		DeviceID: "TAG-NEW",
		UserID:   userID,
		EventID:  eventID,
		Profile:  profile,
	})
	require.NoError(t, err)
	assert.True(t, device.Bound())

	select {
	case msg := <-published:
		assert.Equal(t, domain.FeedbackTypeProfileSync, msg.Type)
		assert.Equal(t, "Alex", msg.Profile.Name)
	case <-time.After(time.Second):
		t.Fatal("profile sync was not published")
	}
}

func TestInteractionService_AssignDevice_MissingID(t *testing.T) {
	d := setupInteractionService(t)
	defer d.ctrl.Finish()

	device, err := d.svc.AssignDevice(context.Background(), ports.AssignDeviceRequest{
		UserID:  uuid.New(),
		EventID: uuid.New(),
	})
	assert.Nil(t, device)
	assertAppError(t, err, "GEN_002")
}
