package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/model"
	"github.com/Smannenbach/Loan-Daddy-LOS-sub000/internal/domain/valueobject"
)

// offerSpec is the YAML shape of one offer in a rates-override file.
type offerSpec struct {
	LenderID          string   `yaml:"lender_id"`
	LenderName        string   `yaml:"lender_name"`
	ProgramName       string   `yaml:"program_name"`
	Rate              float64  `yaml:"rate"`
	Points            float64  `yaml:"points"`
	Fees              float64  `yaml:"fees"`
	MaxLTV            float64  `yaml:"max_ltv"`
	MinDSCR           float64  `yaml:"min_dscr"`
	MinCreditScore    int      `yaml:"min_credit_score"`
	MinLoanAmount     float64  `yaml:"min_loan_amount"`
	MaxLoanAmount     float64  `yaml:"max_loan_amount"`
	TermDescription   string   `yaml:"term"`
	PrepaymentPenalty bool     `yaml:"prepayment_penalty"`
	Inactive          bool     `yaml:"inactive"`
	Conditions        []string `yaml:"conditions"`
}

// ratesFile is the YAML shape of a rates-override file: offers keyed by
// loan-type bucket.
type ratesFile struct {
	Offers map[string][]offerSpec `yaml:"offers"`
}

// LoadRatesFile reads a YAML rates-override file and returns the buckets it
// defines. Buckets absent from the file are simply not returned; the caller
// overlays the result onto the built-in seed.
func LoadRatesFile(path string, now time.Time) (map[valueobject.LoanType][]model.LenderRateOffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}

	var file ratesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rates file: %w", err)
	}

	out := make(map[valueobject.LoanType][]model.LenderRateOffer, len(file.Offers))
	for rawType, specs := range file.Offers {
		lt, err := valueobject.NewLoanType(rawType)
		if err != nil {
			return nil, fmt.Errorf("rates file: %w", err)
		}

		offers := make([]model.LenderRateOffer, 0, len(specs))
		for _, spec := range specs {
			conditions, err := valueobject.ParseConditionSet(spec.Conditions)
			if err != nil {
				return nil, fmt.Errorf("rates file, lender %s: %w", spec.LenderName, err)
			}

			offer := model.LenderRateOffer{
				LenderID:          spec.LenderID,
				LenderName:        spec.LenderName,
				ProgramName:       spec.ProgramName,
				LoanType:          lt,
				Rate:              decimal.NewFromFloat(spec.Rate),
				Points:            decimal.NewFromFloat(spec.Points),
				Fees:              decimal.NewFromFloat(spec.Fees),
				MaxLTV:            decimal.NewFromFloat(spec.MaxLTV),
				MinDSCR:           decimal.NewFromFloat(spec.MinDSCR),
				MinCreditScore:    spec.MinCreditScore,
				MinLoanAmount:     decimal.NewFromFloat(spec.MinLoanAmount),
				MaxLoanAmount:     decimal.NewFromFloat(spec.MaxLoanAmount),
				TermDescription:   spec.TermDescription,
				PrepaymentPenalty: spec.PrepaymentPenalty,
				Active:            !spec.Inactive,
				UpdatedAt:         now,
				Conditions:        conditions,
			}
			if err := offer.Validate(); err != nil {
				return nil, fmt.Errorf("rates file: %w", err)
			}
			offers = append(offers, offer)
		}
		out[lt] = offers
	}

	return out, nil
}

// MergeSnapshots overlays override buckets onto a base snapshot. Buckets
// present in overrides replace the base bucket wholesale.
func MergeSnapshots(
	base, overrides map[valueobject.LoanType][]model.LenderRateOffer,
) map[valueobject.LoanType][]model.LenderRateOffer {
	merged := make(map[valueobject.LoanType][]model.LenderRateOffer, len(base))
	for lt, offers := range base {
		merged[lt] = offers
	}
	for lt, offers := range overrides {
		merged[lt] = offers
	}
	return merged
}
