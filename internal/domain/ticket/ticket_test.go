package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 2, 1, 8, 30, 15, 999, time.FixedZone("ICT", 7*3600))

func strPtr(s string) *string { return &s }

func TestNewTicket_AppliesDefaults(t *testing.T) {
	tk, err := NewTicket(Draft{Subject: "S", Description: "D"}, fixedNow)
	require.NoError(t, err)

	assert.Empty(t, tk.ID)
	assert.Equal(t, "S", tk.Subject)
	assert.Equal(t, DefaultOrganizationID, tk.OrganizationID)
	assert.Equal(t, "UTC", tk.TimeZone)
	assert.Equal(t, "1", tk.NumberOfAffectedUsers)
	assert.Equal(t, "Katalon Studio", tk.Product)
	assert.Equal(t, "General Testing", tk.TypeOfTesting)
	assert.Equal(t, "Development", tk.Environment)
	assert.Equal(t, "9.0.0", tk.KatalonVersion)
	assert.Equal(t, "N/A", tk.OtherVersion)
	assert.Empty(t, tk.ExecutionLog)
	assert.Empty(t, tk.AddOtherUser)
	assert.Equal(t, time.UTC, tk.CreatedAt.Location())
	assert.Equal(t, "2024-02-01T01:30:15Z", tk.CreatedAt.Format(time.RFC3339))
}

func TestNewTicket_KeepsProvidedFields(t *testing.T) {
	tk, err := NewTicket(Draft{
		Title:          "From title",
		Description:    "D",
		Product:        "TrueTest",
		Environment:    "Production",
		KatalonVersion: "Version 10.2.2",
		ErrorLog:       "boom",
	}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "From title", tk.Subject)
	assert.Equal(t, "TrueTest", tk.Product)
	assert.Equal(t, "Production", tk.Environment)
	assert.Equal(t, "Version 10.2.2", tk.KatalonVersion)
	assert.Equal(t, "boom", tk.ErrorLog)
}

func TestNewTicket_SubjectWinsOverTitle(t *testing.T) {
	tk, err := NewTicket(Draft{Subject: "subject", Title: "title", Description: "D"}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "subject", tk.Subject)
}

func TestNewTicket_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{"description only", Draft{Description: "X"}},
		{"subject only", Draft{Subject: "S"}},
		{"title only", Draft{Title: "T"}},
		{"empty", Draft{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.draft, fixedNow)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Nil(t, tk)
		})
	}
}

func TestApply_ShallowMergeKeepsIdentity(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	tk := &Ticket{ID: "TICK-001", Subject: "old", Product: "TrueTest", Environment: "Production", CreatedAt: created}

	tk.Apply(Patch{Subject: strPtr("new"), Environment: strPtr("")})

	assert.Equal(t, "TICK-001", tk.ID)
	assert.Equal(t, created, tk.CreatedAt)
	assert.Equal(t, "new", tk.Subject)
	assert.Equal(t, "TrueTest", tk.Product, "omitted fields are preserved")
	assert.Equal(t, "", tk.Environment, "explicit empty values are written")
}

func TestApply_TitleAliasesSubject(t *testing.T) {
	tk := &Ticket{Subject: "old"}
	tk.Apply(Patch{Title: strPtr("renamed")})
	assert.Equal(t, "renamed", tk.Subject)

	tk.Apply(Patch{Subject: strPtr("subject"), Title: strPtr("ignored")})
	assert.Equal(t, "subject", tk.Subject)
}

func TestClone(t *testing.T) {
	tk := &Ticket{ID: "TICK-001", Subject: "a"}
	c := tk.Clone()
	c.Subject = "b"
	assert.Equal(t, "a", tk.Subject)
}

func TestIDGenerators(t *testing.T) {
	existing := []string{"TICK-001", "TICK-003"}

	assert.Equal(t, "TICK-003", LengthIDGenerator{}.NextID(existing))
	assert.Equal(t, "TICK-004", SequenceIDGenerator{}.NextID(existing))
	assert.Equal(t, "TICK-001", LengthIDGenerator{}.NextID(nil))
	assert.Equal(t, "TICK-001", SequenceIDGenerator{}.NextID(nil))
	assert.Equal(t, "TICK-002", SequenceIDGenerator{}.NextID([]string{"custom", "TICK-1"}))
	assert.Equal(t, "TICK-1000", FormatID(1000))
}

func TestNewIDGenerator(t *testing.T) {
	g, err := NewIDGenerator("length")
	require.NoError(t, err)
	assert.IsType(t, LengthIDGenerator{}, g)

	g, err = NewIDGenerator("sequence")
	require.NoError(t, err)
	assert.IsType(t, SequenceIDGenerator{}, g)

	_, err = NewIDGenerator("uuid")
	assert.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions()
	require.NoError(t, err)

	for name, list := range map[string][]string{
		"products":         opts.Products,
		"time zones":       opts.TimeZones,
		"testing types":    opts.TestingTypes,
		"affected users":   opts.AffectedUsers,
		"katalon versions": opts.KatalonVersions,
		"affected work":    opts.AffectedWork,
	} {
		require.NotEmpty(t, list, name)
		assert.Equal(t, "--None--", list[0], name)
	}

	assert.Len(t, opts.TimeZones, 25)
	assert.Equal(t, "UTC+00:00", opts.TimeZones[1])
	assert.Equal(t, "UTC-12:00", opts.TimeZones[24])
	assert.Contains(t, opts.AffectedUsers, "100+")
	assert.Contains(t, opts.KatalonVersions, "Version 9.7.3")
	assert.Contains(t, opts.AffectedWork, `"It doesn't affect much, but I believe Katalon team should have this ticket resolved"`)
}
