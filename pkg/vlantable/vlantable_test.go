package vlantable

import (
	"testing"

	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		newSuccessEntries map[uint16]labels.Set
		newFailedEntries  map[uint16]labels.Set
		expectedEntries   int
	}{
		"Normal": {
			newSuccessEntries: map[uint16]labels.Set{
				10: {},
				11: {},
			},
			newFailedEntries: map[uint16]labels.Set{
				0:    {},
				4095: {},
				5000: {},
			},
			expectedEntries: 5,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			vt, err := New()
			assert.NoError(t, err)

			for id, d := range tc.newSuccessEntries {
				err := vt.Claim(id, d)
				assert.NoError(t, err)
			}
			for id, d := range tc.newFailedEntries {
				err := vt.Claim(id, d)
				assert.Error(t, err)
			}
			// check table
			for id := range tc.newSuccessEntries {
				if _, err := vt.Get(id); err != nil {
					t.Errorf("%s expecting success claim entry: %d\n", name, id)
				}
			}
			if len(vt.GetAll()) != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(vt.GetAll()))
			}
		})
	}
}

func TestClaimRange(t *testing.T) {
	vt, err := New()
	assert.NoError(t, err)

	err = vt.ClaimRange(1000, 2000, labels.Set{"range": "test"})
	assert.NoError(t, err)
	assert.True(t, vt.Has(1000))
	assert.True(t, vt.Has(1500))
	assert.True(t, vt.Has(2000))
	assert.False(t, vt.Has(2001))

	// overlapping range claims are refused
	err = vt.ClaimRange(1500, 2500, labels.Set{"range": "test2"})
	assert.Error(t, err)

	// ranges touching a reserved VLAN are refused
	err = vt.ClaimRange(4000, 4095, labels.Set{"range": "test3"})
	assert.Error(t, err)

	err = vt.ReleaseRange(1000, 2000)
	assert.NoError(t, err)
	assert.False(t, vt.Has(1500))
}

func TestClaimDynamic(t *testing.T) {
	vt, err := New()
	assert.NoError(t, err)

	// 0 and 1 are reserved, the first free VLAN is 2
	id, err := vt.ClaimDynamic(labels.Set{"a": "b"})
	assert.NoError(t, err)
	assert.Equal(t, uint16(2), id)

	id, err = vt.ClaimDynamic(labels.Set{"a": "b"})
	assert.NoError(t, err)
	assert.Equal(t, uint16(3), id)
}

func TestGetByLabel(t *testing.T) {
	vt, err := New()
	assert.NoError(t, err)

	err = vt.Claim(100, labels.Set{"a": "b"})
	assert.NoError(t, err)
	err = vt.Claim(101, labels.Set{"a": "b"})
	assert.NoError(t, err)
	err = vt.Claim(200, labels.Set{"a": "c"})
	assert.NoError(t, err)

	entries := vt.GetByLabel(labels.SelectorFromSet(labels.Set{"a": "b"}))
	assert.Equal(t, 2, len(entries))

	entries = vt.GetByLabel(labels.SelectorFromSet(labels.Set{"status": "reserved"}))
	assert.Equal(t, 3, len(entries))
}

func TestFindFree(t *testing.T) {
	vt, err := New()
	assert.NoError(t, err)

	id, err := vt.FindFree()
	assert.NoError(t, err)
	assert.Equal(t, uint16(2), id)
	assert.True(t, vt.IsFree(id))
	assert.False(t, vt.IsFree(0))
}
