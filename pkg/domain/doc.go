/*
Package domain contains the core models shared by the wizard packages.

It is kept free of I/O and persistence so that the engine, the catalog loader and
the adapters can all depend on it.

# Key Entities

  - Question: one declarative wizard prompt (type, visibility condition, defaults, options, side effects).
  - Option: a selectable value and its label.
  - OptionConfig: per-option visibility, default override and side effects.
  - Effect: a secondary document mutation triggered by choosing an option.
  - Hooks: observability callbacks fired by the engine.
*/
package domain
