/*
Package dsl builds question catalogs in Go instead of YAML.

	c, err := dsl.New().
		List("fruit", dsl.Opt("apple", "Apple"), dsl.Opt("pear", "Pear")).
		Banner("banner.general", "General").
		String("project.name", "the project name").Mandatory().
		SelectSingle("lunch", "your lunch").OptionsFrom("fruit").
		On("apple").Set("dessert", nil).
		Build()

Each question method starts a new question; the modifiers that follow apply
to it. Build resolves list references the same way the YAML loader does.
*/
package dsl
