/*
Package condition evaluates the small boolean expressions that gate questions and options.

A condition references document values through placeholders wrapped in '#':

	#php.enabled# === true && in_array('intl', #php.extensions.base#)

Each placeholder is replaced by the literal form of the referenced value, then the
resulting text is parsed by a recursive-descent parser into an AST and evaluated.
The grammar is closed: literals, lists, maps, comparisons, boolean connectives,
parentheses and a fixed set of functions (in_array, empty, count). Nothing in a
condition can reach outside the values it was given.

Negation binds tighter than comparison: "!#a# === true" negates #a# before comparing.
*/
package condition
