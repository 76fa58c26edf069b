package goquery_test

import (
	"testing"

	"github.com/kalyug-papa-bolo/vahan"
	"github.com/kalyug-papa-bolo/vahan/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// detailPage is a trimmed-down version of the upstream rc-search
// markup covering every hook the Document implementation relies on.
const detailPage = `<!DOCTYPE html>
<html>
<body>
  <h1>DL01AB1234</h1>

  <div class="hrcd-cardbody">
    <span>Owner Name</span>
    <p>Ravi Kumar</p>
  </div>
  <div class="hrcd-cardbody">
    <span>Model Name</span>
    <p>Splendor Plus</p>
  </div>
  <div class="hrcd-cardbody">
    <span>City Name</span>
    <p></p>
  </div>

  <div class="summary-row">
    <span>Phone</span>
    <p>98xxxxxx21</p>
  </div>

  <div class="insurance-alert-box expired">
    <div class="title">Insurance <b>Expired 45 days</b> ago</div>
  </div>

  <div class="hrc-details-card">
    <h3>Ownership Details</h3>
    <div class="row">
      <span>Owner Name</span>
      <p>RAVI KUMAR S/O SURESH</p>
    </div>
    <div class="row">
      <span>Registered RTO</span>
      <div><p>Delhi South RTO</p></div>
    </div>
  </div>

  <div class="hrc-details-card">
    <h3>Important Dates</h3>
    <div class="row">
      <span>Tax Paid Upto</span>
      <p>31-Mar-2030</p>
    </div>
  </div>
</body>
</html>`

func parse(t *testing.T, markup string) vahan.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(markup)
	require.NoError(t, err)
	return doc
}

func TestDocument_Title(t *testing.T) {
	t.Parallel()

	t.Run("returns first h1", func(t *testing.T) {
		t.Parallel()

		title, ok := parse(t, detailPage).Title()

		require.True(t, ok)
		assert.Equal(t, "DL01AB1234", title)
	})

	t.Run("absent without h1", func(t *testing.T) {
		t.Parallel()

		_, ok := parse(t, "<html><body><p>nothing</p></body></html>").Title()

		assert.False(t, ok)
	})
}

func TestDocument_CardValue(t *testing.T) {
	t.Parallel()

	t.Run("matches label by substring", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage)

		v, ok := doc.CardValue("owner name")
		require.True(t, ok)
		assert.Equal(t, "Ravi Kumar", v)

		v, ok = doc.CardValue("Model")
		require.True(t, ok)
		assert.Equal(t, "Splendor Plus", v)
	})

	t.Run("matching card with empty value is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := parse(t, detailPage).CardValue("City Name")

		assert.False(t, ok)
	})

	t.Run("unknown label is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := parse(t, detailPage).CardValue("Chassis Number")

		assert.False(t, ok)
	})
}

func TestDocument_LabelValue(t *testing.T) {
	t.Parallel()

	t.Run("exact match reads value from enclosing container", func(t *testing.T) {
		t.Parallel()

		v, ok := parse(t, detailPage).LabelValue("Phone", true)

		require.True(t, ok)
		assert.Equal(t, "98xxxxxx21", v)
	})

	t.Run("exact match is case-insensitive but not partial", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage)

		_, ok := doc.LabelValue("Phon", true)
		assert.False(t, ok)

		v, ok := doc.LabelValue("phone", true)
		require.True(t, ok)
		assert.Equal(t, "98xxxxxx21", v)
	})

	t.Run("substring mode matches partial labels", func(t *testing.T) {
		t.Parallel()

		v, ok := parse(t, detailPage).LabelValue("Phon", false)

		require.True(t, ok)
		assert.Equal(t, "98xxxxxx21", v)
	})
}

func TestDocument_Section(t *testing.T) {
	t.Parallel()

	t.Run("heading match is case-insensitive containment", func(t *testing.T) {
		t.Parallel()

		_, ok := parse(t, detailPage).Section("ownership")

		assert.True(t, ok)
	})

	t.Run("heading outside a details card is absent", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><h3>Ownership Details</h3></body></html>`

		_, ok := parse(t, page).Section("Ownership Details")

		assert.False(t, ok)
	})

	t.Run("unknown heading is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := parse(t, detailPage).Section("Permit Details")

		assert.False(t, ok)
	})

	t.Run("value follows its label in document order", func(t *testing.T) {
		t.Parallel()

		sec, ok := parse(t, detailPage).Section("Ownership Details")
		require.True(t, ok)

		v, ok := sec.Value("Owner Name")
		require.True(t, ok)
		assert.Equal(t, "RAVI KUMAR S/O SURESH", v)
	})

	t.Run("value nested a container deeper is still found", func(t *testing.T) {
		t.Parallel()

		sec, ok := parse(t, detailPage).Section("Ownership Details")
		require.True(t, ok)

		v, ok := sec.Value("Registered RTO")
		require.True(t, ok)
		assert.Equal(t, "Delhi South RTO", v)
	})

	t.Run("label absent from section", func(t *testing.T) {
		t.Parallel()

		sec, ok := parse(t, detailPage).Section("Ownership Details")
		require.True(t, ok)

		_, found := sec.Value("Father's Name")
		assert.False(t, found)
	})

	t.Run("section scoping does not leak into other cards", func(t *testing.T) {
		t.Parallel()

		sec, ok := parse(t, detailPage).Section("Important Dates")
		require.True(t, ok)

		_, found := sec.Value("Owner Name")
		assert.False(t, found)

		v, found := sec.Value("Tax Paid Upto")
		require.True(t, found)
		assert.Equal(t, "31-Mar-2030", v)
	})
}

func TestDocument_ExpiredAlert(t *testing.T) {
	t.Parallel()

	t.Run("returns collapsed alert title", func(t *testing.T) {
		t.Parallel()

		text, ok := parse(t, detailPage).ExpiredAlert()

		require.True(t, ok)
		assert.Equal(t, "Insurance Expired 45 days ago", text)
	})

	t.Run("absent without the alert box", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><div class="insurance-alert-box"><div class="title">Active</div></div></body></html>`

		_, ok := parse(t, page).ExpiredAlert()

		assert.False(t, ok)
	})
}

// End-to-end: real markup through the extraction engine.
func TestExtractFromMarkup(t *testing.T) {
	t.Parallel()

	x := vahan.Extract(parse(t, detailPage), "DL01AB1234")

	assert.Equal(t, "DL01AB1234", x.Registration)
	assert.Equal(t, "Ravi Kumar", x.OwnerName)
	assert.Equal(t, "Splendor Plus", x.ModelName)
	assert.Equal(t, "98xxxxxx21", x.Phone)
	assert.Equal(t, "RAVI KUMAR S/O SURESH", x.Ownership["owner_name"])
	assert.Equal(t, "Delhi South RTO", x.Ownership["registered_rto"])
	assert.Equal(t, "31-Mar-2030", x.Validity["tax_paid_upto"])
	assert.True(t, x.Expired)
	assert.Equal(t, 45, x.ExpiredDays)
}
