package resource

import (
	"testing"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	meta := gadgetMeta()

	id, ok := meta.Field("id")
	require.True(t, ok)
	assert.True(t, id.ReadOnly)
	assert.Equal(t, KindUUID, id.Kind)

	code, _ := meta.Field("code")
	assert.True(t, code.Required)
	assert.Equal(t, 10, code.MaxLength)

	status, _ := meta.Field("status")
	assert.Equal(t, []string{"NEW", "USED", "SCRAPPED"}, status.Choices)
	assert.False(t, status.Required)

	price, _ := meta.Field("price")
	assert.Equal(t, KindDecimal, price.Kind)
	assert.Equal(t, "dmin=0,dmax_digits=8,dplaces=2", price.Rules)

	discount, _ := meta.Field("discount")
	assert.True(t, discount.Nullable)

	for _, name := range []string{"total", "created_at"} {
		f, _ := meta.Field(name)
		assert.True(t, f.ReadOnly, name)
	}
}

func TestParseObject(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`[1, 2]`, "Invalid data. Expected a dictionary, but got list."},
		{`"text"`, "Invalid data. Expected a dictionary, but got str."},
		{`42`, "Invalid data. Expected a dictionary, but got int."},
	}
	for _, tt := range tests {
		_, err := parseObject([]byte(tt.body))
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr, tt.body)
		assert.Equal(t, []string{tt.want}, verr.Fields[shared.NonFieldErrors])
	}

	_, err := parseObject([]byte(`{"code": `))
	assert.Error(t, err)

	obj, err := parseObject(nil)
	require.NoError(t, err)
	assert.Empty(t, obj)
}

func TestDecoder_Messages(t *testing.T) {
	meta := gadgetMeta()
	var g gadget
	dec := newDecoder(meta, &g)
	obj, err := parseObject([]byte(`{
		"code": null,
		"quantity": "three",
		"is_active": "perhaps",
		"released": "03/09/2024",
		"owner": 17,
		"discount": null,
		"total": "999.99",
		"id": "ignored"
	}`))
	require.NoError(t, err)

	dec.decode(obj, true)

	assert.Equal(t, []string{"This field may not be null."}, dec.errs.Fields["code"])
	assert.Equal(t, []string{"A valid integer is required."}, dec.errs.Fields["quantity"])
	assert.Equal(t, []string{"Must be a valid boolean."}, dec.errs.Fields["is_active"])
	assert.Equal(t, []string{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."}, dec.errs.Fields["released"])
	assert.Equal(t, []string{"Incorrect type. Expected pk value, received int."}, dec.errs.Fields["owner"])
	assert.Equal(t, []string{"This field is required."}, dec.errs.Fields["price"])
	assert.NotContains(t, dec.errs.Fields, "discount")
	assert.NotContains(t, dec.errs.Fields, "total")
	assert.True(t, g.Total.IsZero())
}

func TestDecoder_TrimsStringsAndAcceptsQuotedNumbers(t *testing.T) {
	var g gadget
	dec := newDecoder(gadgetMeta(), &g)
	obj, err := parseObject([]byte(`{"code": "  V001 ", "price": "1500.00", "quantity": "3", "is_active": "false"}`))
	require.NoError(t, err)

	dec.decode(obj, false)

	require.True(t, dec.errs.Empty(), dec.errs.Error())
	assert.Equal(t, "V001", g.Code)
	assert.Equal(t, "1500.00", g.Price.StringFixed(2))
	assert.Equal(t, 3, g.Quantity)
	assert.False(t, g.IsActive)
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		in     string
		digits int
		places int
	}{
		{"1500.00", 6, 2},
		{"0.001", 3, 3},
		{"100", 3, 0},
		{"0", 1, 0},
		{"-12.5", 3, 1},
	}
	for _, tt := range tests {
		digits, places := precision(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.digits, digits, tt.in)
		assert.Equal(t, tt.places, places, tt.in)
	}
}

func TestValidator_Field(t *testing.T) {
	v := NewValidator()
	meta := gadgetMeta()
	field := func(name string) Field {
		f, ok := meta.Field(name)
		require.True(t, ok, name)
		return f
	}

	tests := []struct {
		name  string
		field string
		value any
		want  string
	}{
		{"too many places", "price", decimal.RequireFromString("1.234"), "Ensure that there are no more than 2 decimal places."},
		{"too many digits", "price", decimal.RequireFromString("1234567.00"), "Ensure that there are no more than 8 digits in total."},
		{"negative amount", "price", decimal.RequireFromString("-1.00"), "Ensure this value is greater than or equal to 0."},
		{"valid amount", "price", decimal.RequireFromString("1500.00"), ""},
		{"invalid choice", "status", gadgetStatus("BROKEN"), `"BROKEN" is not a valid choice.`},
		{"blank required string", "code", "", "This field may not be blank."},
		{"long string", "code", "ABCDEFGHIJK", "Ensure this field has no more than 10 characters."},
		{"bad email", "contact", "not-an-email", "Enter a valid email address."},
		{"empty optional email", "contact", "", ""},
		{"negative integer", "quantity", -1, "Ensure this value is greater than or equal to 0."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Field(field(tt.field), tt.value))
		})
	}

	t.Run("nil optional decimal", func(t *testing.T) {
		var none *decimal.Decimal
		assert.Equal(t, "", v.Field(field("discount"), none))
	})
}
