package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Feedback represents the customer's rating of a delivered order.
// FeedbackNone is the default set at creation; the remaining categories are
// submitted by the customer after delivery.
type Feedback int

const (
	// FeedbackUnknown represents an invalid or undefined feedback value.
	FeedbackUnknown Feedback = iota

	// FeedbackNone is the initial value before the customer has responded.
	FeedbackNone

	FeedbackExcellent
	FeedbackGood
	FeedbackAverage
	FeedbackBad
	FeedbackWorst
)

func getFeedbackStrings() map[Feedback]string {
	return map[Feedback]string{
		FeedbackUnknown:   "Unknown",
		FeedbackNone:      "None",
		FeedbackExcellent: "Excellent",
		FeedbackGood:      "Good",
		FeedbackAverage:   "Average",
		FeedbackBad:       "Bad",
		FeedbackWorst:     "Worst",
	}
}

func getValidFeedbackStrings() map[Feedback]string {
	//nolint:exhaustive // FeedbackUnknown is intentionally excluded as it's invalid
	return map[Feedback]string{
		FeedbackNone:      "None",
		FeedbackExcellent: "Excellent",
		FeedbackGood:      "Good",
		FeedbackAverage:   "Average",
		FeedbackBad:       "Bad",
		FeedbackWorst:     "Worst",
	}
}

// Validate checks if the Feedback value is valid.
func (f Feedback) Validate() error {
	if _, ok := getValidFeedbackStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("feedback is invalid", fmt.Errorf("%d is not a valid feedback", f))
	}
	return nil
}

// String returns the human-readable name of the feedback category.
func (f Feedback) String() string {
	if str, ok := getFeedbackStrings()[f]; ok {
		return str
	}
	return "Unknown"
}
