package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

const validDataset = `
[[properties]]
id = "P001"
name = "Sunset Villa"
city = "Harare"
type = "Villa"
nightly_rate = 120.0
cleaning_fee = 30.0
max_guests = 6
amenities = ["WiFi", "Pool"]
is_active = true

[[bookings]]
id = "B001"
property_id = "P001"
guest_name = "Alice"
guests = 4
check_in = "2026-02-10"
check_out = "2026-02-14"
status = "CONFIRMED"
created_at = "2026-01-01"
`

func TestParse_Valid(t *testing.T) {
	ds, err := Parse(validDataset)
	require.NoError(t, err)

	props := ds.ToDomainProperties()
	require.Len(t, props, 1)
	assert.Equal(t, "Sunset Villa", props[0].Name)
	assert.Equal(t, []string{"WiFi", "Pool"}, props[0].Amenities)
	assert.True(t, props[0].IsActive)

	bookings := ds.ToDomainBookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, "2026-02-10", dates.Format(bookings[0].CheckIn))
	assert.Equal(t, "2026-02-14", dates.Format(bookings[0].CheckOut))
	assert.Equal(t, "2026-01-01", dates.Format(bookings[0].CreatedAt))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		msg     string
	}{
		{
			name:    "broken toml",
			data:    `[[properties]`,
			wantErr: ErrReadDataset,
		},
		{
			name:    "unknown key",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\nrating = 5\n",
			wantErr: ErrInvalidDataset,
			msg:     "rating",
		},
		{
			name:    "negative rate",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\nnightly_rate = -1.0\n",
			wantErr: ErrInvalidDataset,
			msg:     "NightlyRate",
		},
		{
			name:    "zero max guests",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 0\n",
			wantErr: ErrInvalidDataset,
			msg:     "MaxGuests",
		},
		{
			name:    "duplicate property",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\n[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\n",
			wantErr: ErrInvalidDataset,
			msg:     "duplicate property",
		},
		{
			name:    "bad booking date",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\n[[bookings]]\nid = \"B1\"\nproperty_id = \"P1\"\nguests = 1\ncheck_in = \"soon\"\ncheck_out = \"2026-02-14\"\nstatus = \"PENDING\"\n",
			wantErr: ErrInvalidDataset,
			msg:     "isodate",
		},
		{
			name:    "unknown status",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\n[[bookings]]\nid = \"B1\"\nproperty_id = \"P1\"\nguests = 1\ncheck_in = \"2026-02-10\"\ncheck_out = \"2026-02-14\"\nstatus = \"ON_HOLD\"\n",
			wantErr: ErrInvalidDataset,
			msg:     "bookingstatus",
		},
		{
			name:    "unknown property reference",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\n[[bookings]]\nid = \"B1\"\nproperty_id = \"P9\"\nguests = 1\ncheck_in = \"2026-02-10\"\ncheck_out = \"2026-02-14\"\nstatus = \"PENDING\"\n",
			wantErr: ErrInvalidDataset,
			msg:     "unknown property",
		},
		{
			name:    "reversed stay",
			data:    "[[properties]]\nid = \"P1\"\nname = \"n\"\ncity = \"c\"\nmax_guests = 1\n[[bookings]]\nid = \"B1\"\nproperty_id = \"P1\"\nguests = 1\ncheck_in = \"2026-02-14\"\ncheck_out = \"2026-02-10\"\nstatus = \"PENDING\"\n",
			wantErr: ErrInvalidDataset,
			msg:     "check_in must be before check_out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoad_SampleDataset(t *testing.T) {
	ds, err := Load("../../../data/sample.toml")
	require.NoError(t, err)

	assert.Len(t, ds.Properties, 6)
	assert.Len(t, ds.Bookings, 10)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.toml")
	assert.ErrorIs(t, err, ErrReadDataset)
}
