// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)

// TestSession is the predicate function for testsession builders.
type TestSession func(*sql.Selector)

// TopicMastery is the predicate function for topicmastery builders.
type TopicMastery func(*sql.Selector)

// WritingSample is the predicate function for writingsample builders.
type WritingSample func(*sql.Selector)
