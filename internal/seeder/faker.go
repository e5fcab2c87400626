package seeder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/semegn19/life-saving-connector/internal/models"
)

// DataGenerator synthesizes one plausible value per field descriptor. Every
// value is derived from the sequence index, not randomness, so re-running
// the seed produces stable data for equality-based tests. The run token
// keeps unique-indexed strings from colliding with earlier runs.
type DataGenerator struct {
	now      time.Time
	runToken string
}

func NewDataGenerator() *DataGenerator {
	return &DataGenerator{
		now:      time.Now(),
		runToken: strings.Split(uuid.NewString(), "-")[0],
	}
}

// Synthesize produces the value for one field. Resolution order: declared
// enum first, then reference kinds, then arrays, then primitives.
func (g *DataGenerator) Synthesize(entity string, field models.FieldDescriptor, idx int, pools IdentifierPool) interface{} {
	if len(field.Enum) > 0 {
		return field.Enum[0]
	}

	switch field.Kind {
	case models.ArrayOfObjectRef:
		return bson.A{ResolveReference(field.Ref, idx, pools)}
	case models.ObjectRef:
		return ResolveReference(field.Ref, idx, pools)
	case models.ArrayOfPrimitive:
		elem := field
		elem.Kind = field.Elem
		return bson.A{g.primitive(entity, elem, idx)}
	}

	return g.primitive(entity, field, idx)
}

func (g *DataGenerator) primitive(entity string, field models.FieldDescriptor, idx int) interface{} {
	switch field.Kind {
	case models.Number:
		return idx + 1
	case models.Boolean:
		return idx%2 == 0
	case models.Date:
		return g.now.AddDate(0, 0, -idx)
	case models.Mixed:
		// Opaque index-tagged marker, for audit/debug only
		return bson.M{"seeded": true, "idx": idx}
	default:
		return g.synthesizeString(entity, field, idx)
	}
}

func (g *DataGenerator) synthesizeString(entity string, field models.FieldDescriptor, idx int) string {
	base := makeString(entity, field.Name, idx)

	// Never re-derive the account login or credential fields; the account
	// phase assigns them and seeding must not break a known test login.
	if entity == models.AccountEntity && (field.Name == "email" || field.Name == "password") {
		return base
	}

	if field.Unique {
		return fmt.Sprintf("%s_%d_%s", base, idx, g.runToken)
	}

	return base
}

func makeString(entity, fieldName string, idx int) string {
	key := strings.ToLower(fieldName)

	switch {
	case strings.Contains(key, "email"):
		return fmt.Sprintf("%s_%d@seed.local", strings.ToLower(entity), idx)
	case strings.Contains(key, "phone"):
		return fmt.Sprintf("+1555%07d", (1000000+idx)%10000000)
	case strings.Contains(key, "name"):
		return fmt.Sprintf("%s %d", entity, idx)
	case strings.Contains(key, "title"):
		return fmt.Sprintf("%s Title %d", entity, idx)
	case strings.Contains(key, "description"):
		return fmt.Sprintf("%s description %d", entity, idx)
	case strings.Contains(key, "address"):
		return fmt.Sprintf("Address %d, Test City", idx)
	case strings.Contains(key, "location"):
		return fmt.Sprintf("Location %d", idx)
	case strings.Contains(key, "status"):
		return "active"
	case strings.Contains(key, "type"):
		return "general"
	case strings.Contains(key, "blood"):
		return models.BloodTypes[idx%len(models.BloodTypes)]
	}

	return fmt.Sprintf("%s_%d", fieldName, idx)
}

// ResolveReference maps a reference field to an identifier already issued
// for the target entity, cycling through the pool so fan-in stays even
// regardless of relative counts. When the pool is absent or empty (forward
// or cyclic reference) a fresh identifier is minted; it will dangle, which
// is the accepted outcome for cyclic schemas.
func ResolveReference(target string, idx int, pools IdentifierPool) primitive.ObjectID {
	if ids := pools[target]; len(ids) > 0 {
		return ids[idx%len(ids)]
	}
	return primitive.NewObjectID()
}
