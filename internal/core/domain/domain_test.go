package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCompatibilityScore(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want int
	}{
		{"one shared of three", []string{"ai", "startups"}, []string{"ai", "marketing"}, 33},
		{"identical sets", []string{"ai", "music"}, []string{"music", "ai"}, 100},
		{"disjoint sets", []string{"ai"}, []string{"food"}, 0},
		{"empty left", nil, []string{"ai"}, 0},
		{"empty right", []string{"ai"}, nil, 0},
		{"both empty", nil, nil, 0},
		{"case and whitespace insensitive", []string{" AI ", "Music"}, []string{"ai", "music"}, 100},
		{"blank entries ignored", []string{"", "ai"}, []string{"ai", "  "}, 100},
		{"rounds 66.67 up to 67", []string{"a", "b"}, []string{"a", "b", "c"}, 67},
		{"duplicates collapse", []string{"ai", "ai"}, []string{"ai"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompatibilityScore(tt.a, tt.b))
		})
	}
}

func TestWallet_StartOfDay(t *testing.T) {
	w := &Wallet{Timezone: "Europe/Berlin"}

	// 2026-06-15 01:30 Berlin (CEST, UTC+2) == 2026-06-14 23:30 UTC.
	now := time.Date(2026, 6, 14, 23, 30, 0, 0, time.UTC)
	start := w.StartOfDay(now)

	// Local midnight of the 15th is 22:00 UTC on the 14th.
	assert.Equal(t, time.Date(2026, 6, 14, 22, 0, 0, 0, time.UTC), start)
}

func TestWallet_StartOfDay_InvalidTimezoneFallsBackToUTC(t *testing.T) {
	w := &Wallet{Timezone: "Not/AZone"}
	now := time.Date(2026, 6, 15, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), w.StartOfDay(now))
}

func TestLedgerEntry_IsCredit(t *testing.T) {
	assert.True(t, (&LedgerEntry{Kind: EntryKindPurchase, Amount: 500}).IsCredit())
	assert.False(t, (&LedgerEntry{Kind: EntryKindSpend, Amount: -300}).IsCredit())
}

func TestVendorProduct_HasStock(t *testing.T) {
	tracked := 2
	tests := []struct {
		name     string
		stock    *int
		quantity int
		want     bool
	}{
		{"untracked always has stock", nil, 99, true},
		{"enough tracked stock", &tracked, 2, true},
		{"insufficient tracked stock", &tracked, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &VendorProduct{Stock: tt.stock}
			assert.Equal(t, tt.want, p.HasStock(tt.quantity))
		})
	}
}

func TestDevice_Bound(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()

	assert.False(t, (&Device{}).Bound())
	assert.False(t, (&Device{UserID: &userID}).Bound())
	assert.True(t, (&Device{UserID: &userID, EventID: &eventID}).Bound())
}

func TestAchievementCondition_Met(t *testing.T) {
	cond := AchievementCondition{Class: ConditionClassNetworking, MinConnections: 10}

	assert.False(t, cond.Met(9))
	assert.True(t, cond.Met(10))
	assert.True(t, cond.Met(11))

	unknown := AchievementCondition{Class: "UNKNOWN"}
	assert.False(t, unknown.Met(100))
}

func TestFeedbackForScore(t *testing.T) {
	tests := []struct {
		score     int
		intensity int
	}{
		{85, 90},
		{70, 90},
		{55, 60},
		{40, 60},
		{10, 30},
		{0, 10},
	}

	for _, tt := range tests {
		intensity, color := FeedbackForScore(tt.score)
		assert.Equal(t, tt.intensity, intensity)
		assert.NotEmpty(t, color)
	}
}

func TestBuildDeviceSpendKey_SameWindowSameKey(t *testing.T) {
	vendorID := uuid.New()
	base := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	k1 := BuildDeviceSpendKey("tag-01", vendorID, base, 10*time.Second)
	k2 := BuildDeviceSpendKey("tag-01", vendorID, base.Add(3*time.Second), 10*time.Second)
	k3 := BuildDeviceSpendKey("tag-01", vendorID, base.Add(15*time.Second), 10*time.Second)

	assert.Equal(t, k1, k2, "retries within the window must collapse to one key")
	assert.NotEqual(t, k1, k3, "a later window must produce a fresh key")
}

func TestBuildDeviceSpendKey_DistinctPerVendorAndDevice(t *testing.T) {
	at := time.Now()
	v1, v2 := uuid.New(), uuid.New()

	assert.NotEqual(t,
		BuildDeviceSpendKey("tag-01", v1, at, 10*time.Second),
		BuildDeviceSpendKey("tag-01", v2, at, 10*time.Second))
	assert.NotEqual(t,
		BuildDeviceSpendKey("tag-01", v1, at, 10*time.Second),
		BuildDeviceSpendKey("tag-02", v1, at, 10*time.Second))
}

func TestBuildPurchaseKey(t *testing.T) {
	userID := uuid.New()
	key := BuildPurchaseKey(userID, "PAY-REF-1")
	assert.Contains(t, key, userID.String())
	assert.Contains(t, key, "PAY-REF-1")
}
