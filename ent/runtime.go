// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/devika/mathquest/ent/appuser"
	"github.com/devika/mathquest/ent/llmrequestevent"
	"github.com/devika/mathquest/ent/purchaseevent"
	"github.com/devika/mathquest/ent/schema"
	"github.com/devika/mathquest/ent/storyevent"
	"github.com/devika/mathquest/ent/usagerecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appuserFields := schema.AppUser{}.Fields()
	_ = appuserFields
	// appuserDescSessionID is the schema descriptor for session_id field.
	appuserDescSessionID := appuserFields[0].Descriptor()
	// appuser.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	appuser.SessionIDValidator = appuserDescSessionID.Validators[0].(func(string) error)
	// appuserDescStripeCustomerID is the schema descriptor for stripe_customer_id field.
	appuserDescStripeCustomerID := appuserFields[1].Descriptor()
	// appuser.DefaultStripeCustomerID holds the default value on creation for the stripe_customer_id field.
	appuser.DefaultStripeCustomerID = appuserDescStripeCustomerID.Default.(string)
	// appuserDescStripeSubscriptionID is the schema descriptor for stripe_subscription_id field.
	appuserDescStripeSubscriptionID := appuserFields[2].Descriptor()
	// appuser.DefaultStripeSubscriptionID holds the default value on creation for the stripe_subscription_id field.
	appuser.DefaultStripeSubscriptionID = appuserDescStripeSubscriptionID.Default.(string)
	// appuserDescSubscriptionStatus is the schema descriptor for subscription_status field.
	appuserDescSubscriptionStatus := appuserFields[3].Descriptor()
	// appuser.DefaultSubscriptionStatus holds the default value on creation for the subscription_status field.
	appuser.DefaultSubscriptionStatus = appuserDescSubscriptionStatus.Default.(string)
	// appuserDescCreatedAt is the schema descriptor for created_at field.
	appuserDescCreatedAt := appuserFields[4].Descriptor()
	// appuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	appuser.DefaultCreatedAt = appuserDescCreatedAt.Default.(func() time.Time)
	// appuserDescUpdatedAt is the schema descriptor for updated_at field.
	appuserDescUpdatedAt := appuserFields[5].Descriptor()
	// appuser.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appuser.DefaultUpdatedAt = appuserDescUpdatedAt.Default.(func() time.Time)
	// appuser.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appuser.UpdateDefaultUpdatedAt = appuserDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	purchaseeventMixin := schema.PurchaseEvent{}.Mixin()
	purchaseeventMixinFields0 := purchaseeventMixin[0].Fields()
	_ = purchaseeventMixinFields0
	purchaseeventFields := schema.PurchaseEvent{}.Fields()
	_ = purchaseeventFields
	// purchaseeventDescTimestamp is the schema descriptor for timestamp field.
	purchaseeventDescTimestamp := purchaseeventMixinFields0[1].Descriptor()
	// purchaseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	purchaseevent.DefaultTimestamp = purchaseeventDescTimestamp.Default.(func() time.Time)
	// purchaseeventDescSessionID is the schema descriptor for session_id field.
	purchaseeventDescSessionID := purchaseeventFields[0].Descriptor()
	// purchaseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	purchaseevent.SessionIDValidator = purchaseeventDescSessionID.Validators[0].(func(string) error)
	// purchaseeventDescItemID is the schema descriptor for item_id field.
	purchaseeventDescItemID := purchaseeventFields[1].Descriptor()
	// purchaseevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	purchaseevent.ItemIDValidator = purchaseeventDescItemID.Validators[0].(func(string) error)
	storyeventMixin := schema.StoryEvent{}.Mixin()
	storyeventMixinFields0 := storyeventMixin[0].Fields()
	_ = storyeventMixinFields0
	storyeventFields := schema.StoryEvent{}.Fields()
	_ = storyeventFields
	// storyeventDescTimestamp is the schema descriptor for timestamp field.
	storyeventDescTimestamp := storyeventMixinFields0[1].Descriptor()
	// storyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	storyevent.DefaultTimestamp = storyeventDescTimestamp.Default.(func() time.Time)
	// storyeventDescSessionID is the schema descriptor for session_id field.
	storyeventDescSessionID := storyeventFields[0].Descriptor()
	// storyevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	storyevent.SessionIDValidator = storyeventDescSessionID.Validators[0].(func(string) error)
	// storyeventDescHero is the schema descriptor for hero field.
	storyeventDescHero := storyeventFields[1].Descriptor()
	// storyevent.DefaultHero holds the default value on creation for the hero field.
	storyevent.DefaultHero = storyeventDescHero.Default.(string)
	// storyeventDescProblem is the schema descriptor for problem field.
	storyeventDescProblem := storyeventFields[2].Descriptor()
	// storyevent.ProblemValidator is a validator for the "problem" field. It is called by the builders before save.
	storyevent.ProblemValidator = storyeventDescProblem.Validators[0].(func(string) error)
	// storyeventDescProblemType is the schema descriptor for problem_type field.
	storyeventDescProblemType := storyeventFields[3].Descriptor()
	// storyevent.DefaultProblemType holds the default value on creation for the problem_type field.
	storyevent.DefaultProblemType = storyeventDescProblemType.Default.(string)
	// storyeventDescAgeGroup is the schema descriptor for age_group field.
	storyeventDescAgeGroup := storyeventFields[4].Descriptor()
	// storyevent.DefaultAgeGroup holds the default value on creation for the age_group field.
	storyevent.DefaultAgeGroup = storyeventDescAgeGroup.Default.(string)
	// storyeventDescSolvedLocally is the schema descriptor for solved_locally field.
	storyeventDescSolvedLocally := storyeventFields[5].Descriptor()
	// storyevent.DefaultSolvedLocally holds the default value on creation for the solved_locally field.
	storyevent.DefaultSolvedLocally = storyeventDescSolvedLocally.Default.(bool)
	// storyeventDescAnswer is the schema descriptor for answer field.
	storyeventDescAnswer := storyeventFields[6].Descriptor()
	// storyevent.DefaultAnswer holds the default value on creation for the answer field.
	storyevent.DefaultAnswer = storyeventDescAnswer.Default.(string)
	// storyeventDescSource is the schema descriptor for source field.
	storyeventDescSource := storyeventFields[7].Descriptor()
	// storyevent.DefaultSource holds the default value on creation for the source field.
	storyevent.DefaultSource = storyeventDescSource.Default.(string)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescSessionID is the schema descriptor for session_id field.
	usagerecordDescSessionID := usagerecordFields[0].Descriptor()
	// usagerecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usagerecord.SessionIDValidator = usagerecordDescSessionID.Validators[0].(func(string) error)
	// usagerecordDescDay is the schema descriptor for day field.
	usagerecordDescDay := usagerecordFields[1].Descriptor()
	// usagerecord.DayValidator is a validator for the "day" field. It is called by the builders before save.
	usagerecord.DayValidator = usagerecordDescDay.Validators[0].(func(string) error)
	// usagerecordDescCount is the schema descriptor for count field.
	usagerecordDescCount := usagerecordFields[2].Descriptor()
	// usagerecord.DefaultCount holds the default value on creation for the count field.
	usagerecord.DefaultCount = usagerecordDescCount.Default.(int)
}
