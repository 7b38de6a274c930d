package payroll

import (
	"testing"

	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func salariedEmployee(salary, bonus *decimal.Decimal) employee.Employee {
	return employee.Employee{
		Type: employee.TypeSalaried,
		Salaried: &employee.SalariedDetails{
			AnnualSalary:    salary,
			BonusPercentage: bonus,
		},
	}
}

func hourlyEmployee(rate, hours, overtime *decimal.Decimal, multiplier decimal.Decimal) employee.Employee {
	return employee.Employee{
		Type: employee.TypeHourly,
		Hourly: &employee.HourlyDetails{
			HourlyRate:         rate,
			HoursWorked:        hours,
			OvertimeHours:      overtime,
			OvertimeMultiplier: multiplier,
		},
	}
}

func TestGrossPay_Salaried(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		salary *decimal.Decimal
		bonus  *decimal.Decimal
		want   string
	}{
		{name: "plain monthly twelfth", salary: decPtr("60000"), want: "5000"},
		{name: "bonus adds its twelfth", salary: decPtr("60000"), bonus: decPtr("10"), want: "5500"},
		{name: "zero bonus ignored", salary: decPtr("60000"), bonus: decPtr("0"), want: "5000"},
		{name: "negative bonus ignored", salary: decPtr("60000"), bonus: decPtr("-5"), want: "5000"},
		{name: "missing salary yields zero", salary: nil, want: "0"},
		{name: "zero salary yields zero", salary: decPtr("0"), want: "0"},
		{name: "negative salary yields zero", salary: decPtr("-1000"), want: "0"},
		{name: "rounds to cents", salary: decPtr("100000"), want: "8333.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrossPay(salariedEmployee(tt.salary, tt.bonus), timeentry.HoursTotals{})
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestGrossPay_SalariedIgnoresHours(t *testing.T) {
	t.Parallel()

	worked := timeentry.HoursTotals{RegularHours: dec("500"), OvertimeHours: dec("100")}
	got := GrossPay(salariedEmployee(decPtr("60000"), nil), worked)

	assert.True(t, dec("5000").Equal(got))
}

func TestGrossPay_HourlyWithAggregatedHours(t *testing.T) {
	t.Parallel()

	emp := hourlyEmployee(decPtr("20"), decPtr("999"), decPtr("999"), dec("1.5"))
	worked := timeentry.HoursTotals{RegularHours: dec("160"), OvertimeHours: dec("10")}

	got := GrossPay(emp, worked)

	// 20*160 + 20*1.5*10 = 3500; stored defaults play no part.
	assert.True(t, dec("3500").Equal(got), "got %s", got)
}

func TestGrossPay_HourlyFallsBackToStoredDefaults(t *testing.T) {
	t.Parallel()

	emp := hourlyEmployee(decPtr("20"), decPtr("100"), decPtr("5"), dec("1.5"))

	got := GrossPay(emp, timeentry.HoursTotals{})

	// 20*100 + 20*1.5*5 = 2150
	assert.True(t, dec("2150").Equal(got), "got %s", got)
}

func TestGrossPay_HourlyFallsBackTo160WhenNothingStored(t *testing.T) {
	t.Parallel()

	emp := hourlyEmployee(decPtr("20"), nil, nil, dec("1.5"))

	got := GrossPay(emp, timeentry.HoursTotals{})

	assert.True(t, dec("3200").Equal(got), "got %s", got)
}

func TestGrossPay_HourlyMissingRateYieldsZero(t *testing.T) {
	t.Parallel()

	worked := timeentry.HoursTotals{RegularHours: dec("160")}

	for name, emp := range map[string]employee.Employee{
		"nil rate":      hourlyEmployee(nil, nil, nil, dec("1.5")),
		"zero rate":     hourlyEmployee(decPtr("0"), nil, nil, dec("1.5")),
		"negative rate": hourlyEmployee(decPtr("-1"), nil, nil, dec("1.5")),
	} {
		t.Run(name, func(t *testing.T) {
			got := GrossPay(emp, worked)
			assert.True(t, decimal.Zero.Equal(got))
		})
	}
}

func TestGrossPay_HourlyCustomMultiplier(t *testing.T) {
	t.Parallel()

	emp := hourlyEmployee(decPtr("10"), nil, nil, dec("2"))
	worked := timeentry.HoursTotals{RegularHours: dec("40"), OvertimeHours: dec("10")}

	got := GrossPay(emp, worked)

	// 10*40 + 10*2*10 = 600
	assert.True(t, dec("600").Equal(got), "got %s", got)
}

func TestGrossPay_HourlyZeroMultiplierDefaultsTo1_5(t *testing.T) {
	t.Parallel()

	emp := hourlyEmployee(decPtr("10"), nil, nil, decimal.Zero)
	worked := timeentry.HoursTotals{RegularHours: dec("40"), OvertimeHours: dec("10")}

	got := GrossPay(emp, worked)

	assert.True(t, dec("550").Equal(got), "got %s", got)
}

func TestCalculateDeductions_Schedule(t *testing.T) {
	t.Parallel()

	d, net := CalculateDeductions(dec("5000"))

	assert.True(t, dec("500").Equal(d.IncomeTax))
	assert.True(t, dec("600").Equal(d.ProvidentFund))
	assert.True(t, dec("37.50").Equal(d.SocialContribution))
	assert.True(t, dec("200").Equal(d.ProfessionalTax))
	assert.True(t, dec("1500").Equal(d.HealthInsurance))
	assert.True(t, dec("250").Equal(d.RetirementContribution))
	assert.True(t, decimal.Zero.Equal(d.OtherDeductions))
	assert.True(t, dec("1912.50").Equal(net), "got %s", net)
}

func TestCalculateDeductions_NetIdentity(t *testing.T) {
	t.Parallel()

	for _, gross := range []string{"0", "0.01", "1234.56", "5000", "8333.33", "99999.99"} {
		g := dec(gross)
		d, net := CalculateDeductions(g)
		assert.True(t, g.Sub(d.Total()).Equal(net), "gross %s: net %s != gross - total %s", gross, net, g.Sub(d.Total()))
	}
}

func TestCalculateDeductions_FixedItemsApplyAtZeroGross(t *testing.T) {
	t.Parallel()

	d, net := CalculateDeductions(decimal.Zero)

	assert.True(t, dec("200").Equal(d.ProfessionalTax))
	assert.True(t, dec("1500").Equal(d.HealthInsurance))
	assert.True(t, dec("-1700").Equal(net), "got %s", net)
}
