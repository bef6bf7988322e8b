package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== ENTITY IDS ====================

// GenerateID creates a prefixed identifier, e.g. "art-1718000000000-4821".
// The millisecond timestamp keeps ids sortable by creation time; the random
// suffix disambiguates same-millisecond creations.
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().UnixMilli(), rand.Intn(10000))
}

func GenerateArtisanID() string {
	return GenerateID("art")
}

func GenerateCustomerID() string {
	return GenerateID("user")
}

func GenerateProductID() string {
	return GenerateID("prod")
}

func GenerateImageID() string {
	return GenerateID("prod-img")
}

// ==================== ORDER ID ====================

// GenerateOrderID creates a short order reference like "AV4F2C91".
func GenerateOrderID() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return "AV" + suffix
}
