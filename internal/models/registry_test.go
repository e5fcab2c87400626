package models

import (
	"strings"
	"testing"
)

func TestRegistryCompleteness(t *testing.T) {
	entities := Registry()

	if len(entities) != 14 {
		t.Fatalf("Expected 14 entities, got %d", len(entities))
	}

	names := make(map[string]bool, len(entities))
	for _, e := range entities {
		if names[e.Name] {
			t.Errorf("Duplicate entity declared: %s", e.Name)
		}
		names[e.Name] = true

		if e.Collection == "" {
			t.Errorf("Entity %s has no collection", e.Name)
		}
		if e.Collection != strings.ToLower(e.Collection) {
			t.Errorf("Collection for %s should be lowercase, got %q", e.Name, e.Collection)
		}
		if len(e.Fields) == 0 {
			t.Errorf("Entity %s declares no fields", e.Name)
		}
	}

	if !names[AccountEntity] {
		t.Errorf("Registry is missing the account entity %s", AccountEntity)
	}
	for profile := range OneToOneAccountEntities {
		if !names[profile] {
			t.Errorf("1:1 profile entity %s not declared in registry", profile)
		}
	}
}

func TestRegistryReferenceTargetsKnown(t *testing.T) {
	entities := Registry()

	known := make(map[string]bool, len(entities))
	for _, e := range entities {
		known[e.Name] = true
	}

	for _, e := range entities {
		for _, f := range e.Fields {
			if f.Kind != ObjectRef && f.Kind != ArrayOfObjectRef {
				if f.Ref != "" {
					t.Errorf("%s.%s has Ref %q but kind %s", e.Name, f.Name, f.Ref, f.Kind)
				}
				continue
			}
			if f.Ref != "" && !known[f.Ref] {
				t.Errorf("%s.%s references unknown entity %q", e.Name, f.Name, f.Ref)
			}
		}
	}
}

func TestAccountEntityFields(t *testing.T) {
	user, ok := ByName(AccountEntity)
	if !ok {
		t.Fatalf("ByName(%q) not found", AccountEntity)
	}

	var email, password *FieldDescriptor
	for i := range user.Fields {
		switch user.Fields[i].Name {
		case "email":
			email = &user.Fields[i]
		case "password":
			password = &user.Fields[i]
		}
	}

	if email == nil || password == nil {
		t.Fatal("Account entity must declare email and password fields")
	}
	if !email.Required || !email.Unique {
		t.Errorf("email should be required and unique, got required=%v unique=%v", email.Required, email.Unique)
	}
	if !password.Required {
		t.Error("password should be required")
	}
}

func TestOneToOneProfilesDeclareUniqueUserRef(t *testing.T) {
	for profile := range OneToOneAccountEntities {
		e, ok := ByName(profile)
		if !ok {
			t.Fatalf("ByName(%q) not found", profile)
		}

		found := false
		for _, f := range e.Fields {
			if f.Name == "userId" {
				found = true
				if f.Kind != ObjectRef || f.Ref != AccountEntity {
					t.Errorf("%s.userId should reference %s, got kind=%s ref=%q", profile, AccountEntity, f.Kind, f.Ref)
				}
				if !f.Required || !f.Unique {
					t.Errorf("%s.userId should be required and unique", profile)
				}
			}
		}
		if !found {
			t.Errorf("%s has no userId field", profile)
		}
	}
}

func TestNestedPathsDeclared(t *testing.T) {
	center, ok := ByName("BloodDonationCenter")
	if !ok {
		t.Fatal("BloodDonationCenter not found")
	}

	var geoType *FieldDescriptor
	for i := range center.Fields {
		if center.Fields[i].Name == "coordinates.type" {
			geoType = &center.Fields[i]
		}
	}

	if geoType == nil {
		t.Fatal("BloodDonationCenter should declare coordinates.type")
	}
	if len(geoType.Enum) != 1 || geoType.Enum[0] != "Point" {
		t.Errorf("coordinates.type should be enumerated to Point, got %v", geoType.Enum)
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, ok := ByName("Ghost"); ok {
		t.Error("Expected lookup of unknown entity to fail")
	}
}
