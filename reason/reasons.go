/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reason

// Condition and state checks.
const (
	ConditionArgument Reason = "condition.argument"
	ConditionState    Reason = "condition.state"
	// ConditionSize marks a negative size or total length handed to an
	// index check.
	ConditionSize Reason = "condition.size"
)

// Offset/length bounds (CheckBounds).
const (
	BoundsOffset   Reason = "bounds.offset"
	BoundsLength   Reason = "bounds.length"
	BoundsOverflow Reason = "bounds.overflow"
	BoundsRange    Reason = "bounds.range"
)

// Element and position indexes.
const (
	IndexElement    Reason = "index.element"
	IndexPosition   Reason = "index.position"
	IndexRangeStart Reason = "index.range.start"
	IndexRangeOrder Reason = "index.range.order"
	IndexRangeEnd   Reason = "index.range.end"
)

// Numeric checks.
const (
	NumericZero           Reason = "numeric.zero"
	NumericNonZero        Reason = "numeric.non_zero"
	NumericPositive       Reason = "numeric.positive"
	NumericNonNegative    Reason = "numeric.non_negative"
	NumericNegative       Reason = "numeric.negative"
	NumericNonPositive    Reason = "numeric.non_positive"
	NumericClosedRange    Reason = "numeric.range.closed"
	NumericOpenRange      Reason = "numeric.range.open"
	NumericLeftOpenRange  Reason = "numeric.range.left_open"
	NumericRightOpenRange Reason = "numeric.range.right_open"
	NumericLess           Reason = "numeric.compare.less"
	NumericLessEqual      Reason = "numeric.compare.less_equal"
	NumericGreater        Reason = "numeric.compare.greater"
	NumericGreaterEqual   Reason = "numeric.compare.greater_equal"
	NumericEqual          Reason = "numeric.compare.equal"
	NumericNotEqual       Reason = "numeric.compare.not_equal"
)

// Text checks.
const (
	TextBlank           Reason = "text.blank"
	TextLengthExact     Reason = "text.length.exact"
	TextLengthMin       Reason = "text.length.min"
	TextLengthMax       Reason = "text.length.max"
	TextLengthRange     Reason = "text.length.range"
	TextPatternMatch    Reason = "text.pattern.match"
	TextPatternNotMatch Reason = "text.pattern.not_match"
	TextPatternNil      Reason = "text.pattern.nil"
)

// Collection checks.
const (
	CollectionEmpty       Reason = "collection.empty"
	CollectionLengthExact Reason = "collection.length.exact"
	CollectionLengthMin   Reason = "collection.length.min"
	CollectionLengthMax   Reason = "collection.length.max"
	CollectionLengthRange Reason = "collection.length.range"
	CollectionElementNil  Reason = "collection.element.nil"
)

// Optional checks.
const (
	OptionalMissing   Reason = "optional.missing"
	OptionalPredicate Reason = "optional.predicate"
)

// Catalogue returns every reason the built-in checks can attach, grouped by
// category in declaration order.
func Catalogue() []Reason {
	return []Reason{
		ConditionArgument, ConditionState, ConditionSize,
		BoundsOffset, BoundsLength, BoundsOverflow, BoundsRange,
		IndexElement, IndexPosition, IndexRangeStart, IndexRangeOrder, IndexRangeEnd,
		NumericZero, NumericNonZero, NumericPositive, NumericNonNegative,
		NumericNegative, NumericNonPositive,
		NumericClosedRange, NumericOpenRange, NumericLeftOpenRange, NumericRightOpenRange,
		NumericLess, NumericLessEqual, NumericGreater, NumericGreaterEqual,
		NumericEqual, NumericNotEqual,
		TextBlank, TextLengthExact, TextLengthMin, TextLengthMax, TextLengthRange,
		TextPatternMatch, TextPatternNotMatch, TextPatternNil,
		CollectionEmpty, CollectionLengthExact, CollectionLengthMin,
		CollectionLengthMax, CollectionLengthRange, CollectionElementNil,
		OptionalMissing, OptionalPredicate,
	}
}
