package bonding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffplan/internal/staffing/models"
	id "staffplan/pkg/domain"
)

func person(name string, gender models.Gender, bondedWith string) models.Person {
	return models.Person{
		ID:             id.NewPersonID(),
		Name:           name,
		Gender:         gender,
		Preference:     models.PreferenceNone,
		BondedWithName: bondedWith,
		CreatedAt:      time.Now(),
	}
}

func TestResolve(t *testing.T) {
	t.Run("mutual references collapse into one bond", func(t *testing.T) {
		amy := person("Amy", models.GenderFemale, "Ben")
		ben := person("Ben", models.GenderMale, "Amy")

		bonds := Resolve([]models.Person{amy, ben})

		require.Len(t, bonds, 1)
		assert.True(t, bonds[0].Equal(models.Bond{First: amy.ID, Second: ben.ID}))
	})

	t.Run("one-sided reference is enough", func(t *testing.T) {
		amy := person("Amy", models.GenderFemale, "")
		ben := person("Ben", models.GenderMale, "amy")

		bonds := Resolve([]models.Person{amy, ben})

		require.Len(t, bonds, 1)
		assert.Equal(t, ben.ID, bonds[0].First)
		assert.Equal(t, amy.ID, bonds[0].Second)
	})

	t.Run("matching is case-insensitive and ignores surrounding space", func(t *testing.T) {
		amy := person("AMY", models.GenderFemale, "")
		ben := person("Ben", models.GenderMale, "  aMy ")

		bonds := Resolve([]models.Person{amy, ben})
		require.Len(t, bonds, 1)
	})

	t.Run("unknown reference leaves person unbonded", func(t *testing.T) {
		ben := person("Ben", models.GenderMale, "Nobody")
		bonds := Resolve([]models.Person{ben, person("Cat", models.GenderFemale, "")})
		assert.Empty(t, bonds)
	})

	t.Run("self reference is ignored", func(t *testing.T) {
		ben := person("Ben", models.GenderMale, "Ben")
		assert.Empty(t, Resolve([]models.Person{ben}))
	})

	t.Run("duplicate names resolve to the first unprocessed occurrence", func(t *testing.T) {
		first := person("Dee", models.GenderFemale, "")
		second := person("Dee", models.GenderFemale, "")
		ben := person("Ben", models.GenderMale, "Dee")

		bonds := Resolve([]models.Person{first, second, ben})
		require.Len(t, bonds, 1)
		partner, ok := bonds.PartnerOf(ben.ID)
		require.True(t, ok)
		assert.Equal(t, first.ID, partner)
	})

	t.Run("a person belongs to at most one bond", func(t *testing.T) {
		amy := person("Amy", models.GenderFemale, "Ben")
		ben := person("Ben", models.GenderMale, "")
		cat := person("Cat", models.GenderFemale, "Ben")

		bonds := Resolve([]models.Person{amy, ben, cat})

		require.Len(t, bonds, 1)
		assert.True(t, bonds.Contains(amy.ID))
		assert.True(t, bonds.Contains(ben.ID))
		assert.False(t, bonds.Contains(cat.ID))
	})

	t.Run("resolved id reference wins over name", func(t *testing.T) {
		first := person("Dee", models.GenderFemale, "")
		second := person("Dee", models.GenderFemale, "")
		ben := person("Ben", models.GenderMale, "Dee")
		ben.BondedWithID = second.ID

		bonds := Resolve([]models.Person{first, second, ben})
		require.Len(t, bonds, 1)
		partner, _ := bonds.PartnerOf(ben.ID)
		assert.Equal(t, second.ID, partner)
	})

	t.Run("empty roster yields no bonds", func(t *testing.T) {
		bonds := Resolve(nil)
		assert.NotNil(t, bonds)
		assert.Empty(t, bonds)
	})
}

// TestResolve_Symmetric checks that whichever side declares the reference,
// the resulting bond is the same unordered pair.
func TestResolve_Symmetric(t *testing.T) {
	amy := person("Amy", models.GenderFemale, "")
	ben := person("Ben", models.GenderMale, "")

	amyDeclares := amy
	amyDeclares.BondedWithName = "Ben"
	benDeclares := ben
	benDeclares.BondedWithName = "Amy"

	rosters := [][]models.Person{
		{amyDeclares, ben},
		{amy, benDeclares},
		{benDeclares, amy},
		{ben, amyDeclares},
		{amyDeclares, benDeclares},
	}
	want := models.Bond{First: amy.ID, Second: ben.ID}
	for _, roster := range rosters {
		bonds := Resolve(roster)
		require.Len(t, bonds, 1)
		assert.True(t, bonds[0].Equal(want))
		assert.Equal(t, want.Canonical(), bonds[0].Canonical())
	}
}

func TestLink(t *testing.T) {
	t.Run("newcomer resolves against existing roster", func(t *testing.T) {
		amy := person("Amy", models.GenderFemale, "")
		ben := person("Ben", models.GenderMale, "AMY")

		linked, back := Link([]models.Person{amy}, ben)
		assert.Equal(t, amy.ID, linked.BondedWithID)
		assert.Empty(t, back)
	})

	t.Run("existing unresolved references point at newcomer", func(t *testing.T) {
		amy := person("Amy", models.GenderFemale, "Ben")
		cat := person("Cat", models.GenderFemale, "")
		ben := person("Ben", models.GenderMale, "")

		linked, back := Link([]models.Person{amy, cat}, ben)
		assert.True(t, linked.BondedWithID.IsNil())
		assert.Equal(t, []int{0}, back)
	})

	t.Run("already resolved references are left alone", func(t *testing.T) {
		amy := person("Amy", models.GenderFemale, "Ben")
		amy.BondedWithID = id.NewPersonID()
		ben := person("Ben", models.GenderMale, "")

		_, back := Link([]models.Person{amy}, ben)
		assert.Empty(t, back)
	})
	t.Run("a namesake already on the roster keeps the reference", func(t *testing.T) {
		ann := person("Ann", models.GenderFemale, "Bo")
		bo := person("Bo", models.GenderMale, "")
		later := person("bo", models.GenderMale, "")

		_, back := Link([]models.Person{ann, bo}, later)
		assert.Empty(t, back)
	})
}

func TestUnlink(t *testing.T) {
	t.Run("re-pins to the first remaining namesake", func(t *testing.T) {
		ann := person("Ann", models.GenderFemale, "Bo")
		bo2 := person("Bo", models.GenderMale, "")
		bo3 := person("Bo", models.GenderMale, "")
		departed := id.NewPersonID()
		ann.BondedWithID = departed

		roster := []models.Person{ann, bo2, bo3}
		Unlink(roster, departed)
		assert.Equal(t, bo2.ID, roster[0].BondedWithID)
	})

	t.Run("clears the reference when nobody matches", func(t *testing.T) {
		ann := person("Ann", models.GenderFemale, "Bo")
		departed := id.NewPersonID()
		ann.BondedWithID = departed

		roster := []models.Person{ann}
		Unlink(roster, departed)
		assert.True(t, roster[0].BondedWithID.IsNil())
	})
}

func TestFirstNamed(t *testing.T) {
	amy := person("Amy", models.GenderFemale, "")
	amy2 := person(" AMY ", models.GenderFemale, "")
	roster := []models.Person{amy, amy2}

	assert.Equal(t, 0, FirstNamed(roster, "amy", id.NewPersonID()))
	assert.Equal(t, 1, FirstNamed(roster, "amy", amy.ID))
	assert.Equal(t, -1, FirstNamed(roster, "", id.NewPersonID()))
	assert.Equal(t, -1, FirstNamed(roster, "Zed", id.NewPersonID()))
}
