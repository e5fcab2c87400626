package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/semegn19/life-saving-connector/internal/config"
	"github.com/semegn19/life-saving-connector/internal/models"
)

// SeedPassword is the plaintext every seeded account authenticates with.
const SeedPassword = "Password123!"

type fixedAccount struct {
	email string
	roles []string
}

// fixedAccounts are the well-known logins seeded first, one per
// administrative role, so the platform is usable immediately after a seed.
var fixedAccounts = []fixedAccount{
	{email: "admin@lsc.local", roles: []string{models.RolePlatformAdmin}},
	{email: "volunteer@lsc.local", roles: []string{models.RoleVolunteer}},
	{email: "bloodadmin@lsc.local", roles: []string{models.RoleBloodAdmin}},
	{email: "organadmin@lsc.local", roles: []string{models.RoleOrganAdmin}},
	{email: "voladmin@lsc.local", roles: []string{models.RoleVolunteerAdmin}},
}

// commonPaths are filled even when optional; they are what the UI displays.
var commonPaths = []string{"name", "title", "description", "status", "type", "email", "phone", "location"}

// Seeder drives one seeding run: accounts first, then every other entity in
// dependency order, threading forward the identifier pools each step
// produces. A run is strictly sequential and keeps no state between
// invocations.
type Seeder struct {
	config    *config.Config
	entities  []models.EntityDescriptor
	inserter  *BatchInserter
	generator *DataGenerator
	pools     IdentifierPool
}

func New(cfg *config.Config, store DocumentStore) *Seeder {
	return NewWithEntities(cfg, store, models.Registry())
}

// NewWithEntities seeds a specific entity set instead of the full registry.
func NewWithEntities(cfg *config.Config, store DocumentStore, entities []models.EntityDescriptor) *Seeder {
	return &Seeder{
		config:    cfg,
		entities:  entities,
		inserter:  NewBatchInserter(store),
		generator: NewDataGenerator(),
		pools:     make(IdentifierPool),
	}
}

func (s *Seeder) entityByName(name string) (models.EntityDescriptor, bool) {
	for _, e := range s.entities {
		if e.Name == name {
			return e, true
		}
	}
	return models.EntityDescriptor{}, false
}

// Pools exposes the identifiers inserted so far, keyed by entity.
func (s *Seeder) Pools() IdentifierPool {
	return s.pools
}

func (s *Seeder) Seed(ctx context.Context, count int) error {
	if count <= 0 {
		count = s.config.Seed.Count
	}

	graph, err := BuildDependencyGraph(s.entities)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	order := graph.InsertionOrder()

	color.Cyan("🌱 Seeding %d entities (count=%d)", len(order), count)

	account, ok := s.entityByName(models.AccountEntity)
	if !ok {
		return fmt.Errorf("entity set is missing the %s entity", models.AccountEntity)
	}

	// Accounts go first so login-critical records exist with known
	// credentials before anything references them.
	inserted, err := s.seedAccounts(ctx, account, count)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", account.Name, err)
	}
	s.recordPool(account.Name, inserted)
	color.Green("  %s -> inserted %d docs into %q", account.Name, len(inserted), account.Collection)

	for _, name := range order {
		if name == models.AccountEntity {
			continue
		}

		entity, ok := s.entityByName(name)
		if !ok {
			continue
		}

		n := count
		if models.OneToOneAccountEntities[name] {
			// 1:1 profiles are sized to the accounts actually seeded
			n = len(s.pools[models.AccountEntity])
		}

		docs := s.buildDocuments(entity, n)
		batch, err := s.inserter.InsertBatch(ctx, entity.Collection, docs)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
		s.recordPool(name, batch)
		color.Green("  %s -> inserted %d docs into %q", name, len(batch), entity.Collection)
	}

	s.printCredentials()
	return nil
}

// seedAccounts inserts the fixed well-known logins padded with numbered
// filler accounts up to count. Every account shares one bcrypt hash of
// SeedPassword.
func (s *Seeder) seedAccounts(ctx context.Context, entity models.EntityDescriptor, count int) ([]bson.M, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	accounts := make([]fixedAccount, 0, count)
	accounts = append(accounts, fixedAccounts...)
	for i := len(accounts); i < count; i++ {
		accounts = append(accounts, fixedAccount{
			email: fmt.Sprintf("user%d@lsc.local", i-len(fixedAccounts)+1),
			roles: []string{models.RoleVolunteer},
		})
	}
	if len(accounts) > count {
		accounts = accounts[:count]
	}

	docs := make([]bson.M, len(accounts))
	for i, a := range accounts {
		roles := make(bson.A, len(a.roles))
		for j, r := range a.roles {
			roles[j] = r
		}
		docs[i] = bson.M{
			"_id":        primitive.NewObjectID(),
			"firstName":  "Seed",
			"lastName":   fmt.Sprintf("User%d", i),
			"email":      strings.ToLower(a.email),
			"password":   string(hash),
			"userRoles":  roles,
			"isActive":   true,
			"isVerified": true,
			"isBlocked":  false,
		}
	}

	return s.inserter.InsertBatch(ctx, entity.Collection, docs)
}

// buildDocuments materializes count insert-ready documents for one entity,
// filling required fields plus the commonly displayed optional ones.
func (s *Seeder) buildDocuments(entity models.EntityDescriptor, count int) []bson.M {
	accountPool := s.pools[models.AccountEntity]
	oneToOne := models.OneToOneAccountEntities[entity.Name]

	docs := make([]bson.M, 0, count)
	for i := 0; i < count; i++ {
		doc := bson.M{"_id": primitive.NewObjectID()}

		for _, field := range entity.Fields {
			if !field.Required && !looksCommon(field.Name) {
				continue
			}

			// 1:1 profiles take their account reference round-robin so no
			// two documents share one account
			if oneToOne && field.Name == "userId" && len(accountPool) > 0 {
				setNested(doc, field.Name, accountPool[i%len(accountPool)])
				continue
			}

			setNested(doc, field.Name, s.generator.Synthesize(entity.Name, field, i, s.pools))
		}

		docs = append(docs, doc)
	}

	return docs
}

func looksCommon(fieldName string) bool {
	key := strings.ToLower(fieldName)
	for _, p := range commonPaths {
		if strings.Contains(key, p) {
			return true
		}
	}
	return false
}

// setNested writes a value at a dotted path, creating intermediate
// documents as needed.
func setNested(doc bson.M, path string, value interface{}) {
	parts := strings.Split(path, ".")
	cur := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(bson.M)
		if !ok {
			next = bson.M{}
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}

func (s *Seeder) recordPool(entity string, docs []bson.M) {
	for _, d := range docs {
		if id, ok := d["_id"].(primitive.ObjectID); ok {
			s.pools[entity] = append(s.pools[entity], id)
		}
	}
}

func (s *Seeder) printCredentials() {
	color.Cyan("\n🔑 Known login credentials:")
	for _, a := range fixedAccounts {
		fmt.Printf("  %s / %s (%s)\n", a.email, SeedPassword, strings.Join(a.roles, ", "))
	}
}
