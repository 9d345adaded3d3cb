/*
Package ports defines the driven ports (interfaces) of the wizard.

These interfaces decouple the question engine from terminals and storage, so the
same engine runs against a TTY, a scripted test harness, a YAML file or Redis.

# Key Interfaces

  - Prompter: renders prompts and collects answers (free text, choices, banners).
  - DocumentStore: loads and saves the raw configuration tree under a key.
  - Locker: keeps two sessions from saving the same document concurrently.
*/
package ports
