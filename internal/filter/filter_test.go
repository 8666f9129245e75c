package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
)

func testAnimals() []models.Animal {
	return []models.Animal{
		{Name: "Fox", Characteristics: map[string]string{"skin_type": "Fur"}},
		{Name: "Snake", Characteristics: map[string]string{"skin_type": "Scales"}},
		{Name: "Iguana", Characteristics: map[string]string{"skin_type": "Scales"}},
		{Name: "Jellyfish", Characteristics: map[string]string{"color": "Translucent"}},
	}
}

func TestApply_NilCriterionIsIdentity(t *testing.T) {
	animals := testAnimals()

	result := Apply(animals, nil)

	assert.Equal(t, animals, result)
}

func TestApply_MatchesCaseInsensitively(t *testing.T) {
	animals := testAnimals()

	lower := Apply(animals, &models.FilterCriterion{Key: "skin_type", Value: "scales"})
	upper := Apply(animals, &models.FilterCriterion{Key: "skin_type", Value: "SCALES"})

	require.Len(t, lower, 2)
	assert.Equal(t, lower, upper, "criterion value casing must not change the result set")
}

func TestApply_CaseFoldsKey(t *testing.T) {
	// Characteristics keys are stored lower-cased by the normalizer; the
	// criterion key may arrive in any casing.
	result := Apply(testAnimals(), &models.FilterCriterion{Key: "Skin_Type", Value: "Fur"})

	require.Len(t, result, 1)
	assert.Equal(t, "Fox", result[0].Name)
}

func TestApply_PreservesOrder(t *testing.T) {
	result := Apply(testAnimals(), &models.FilterCriterion{Key: "skin_type", Value: "scales"})

	require.Len(t, result, 2)
	assert.Equal(t, "Snake", result[0].Name)
	assert.Equal(t, "Iguana", result[1].Name)
}

func TestApply_MissingKeyExcludesSilently(t *testing.T) {
	// Jellyfish has no skin_type at all; it is excluded, not an error.
	result := Apply(testAnimals(), &models.FilterCriterion{Key: "skin_type", Value: "Fur"})

	require.Len(t, result, 1)
	assert.Equal(t, "Fox", result[0].Name)
}

func TestApply_NoMatchesYieldsEmptySlice(t *testing.T) {
	result := Apply(testAnimals(), &models.FilterCriterion{Key: "skin_type", Value: "Feathers"})

	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    *models.FilterCriterion
		wantErr bool
	}{
		{"empty spec means no filter", "", nil, false},
		{"simple pair", "skin_type=scales", &models.FilterCriterion{Key: "skin_type", Value: "scales"}, false},
		{"spaces trimmed", " skin_type = scales ", &models.FilterCriterion{Key: "skin_type", Value: "scales"}, false},
		{"missing separator", "skin_type", nil, true},
		{"missing value", "skin_type=", nil, true},
		{"missing key", "=scales", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCriterion(tt.spec)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCriterion)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
