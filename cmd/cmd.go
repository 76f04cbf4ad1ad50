// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// criteriaFlags are shared by `library view` and `library export`.
func criteriaFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "status",
			Usage: "Watch status (all, watched, want_to_watch)",
			Value: "all",
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "Media type (all, movie, tv, documentary, animation, animation_movie, live_action_movie)",
			Value:   "all",
		},
		&cli.StringFlag{
			Name:  "region",
			Usage: "Production region (all or a region name, e.g. 中国大陆)",
			Value: "all",
		},
		&cli.StringFlag{
			Name:    "genre",
			Aliases: []string{"g"},
			Usage:   "Genre (all, action, comedy, drama, thriller, horror, romance, science_fiction, fantasy, crime, war)",
			Value:   "all",
		},
		&cli.StringFlag{
			Name:    "year",
			Aliases: []string{"y"},
			Usage:   "Decade (all, 2020s..1960s, other)",
			Value:   "all",
		},
		&cli.StringFlag{
			Name:  "background",
			Usage: "Background time tag (all, 无背景时间, or an exact tag)",
			Value: "all",
		},
		&cli.StringFlag{
			Name:    "keyword",
			Aliases: []string{"k"},
			Usage:   "Keyword matched against title, overview, genres, countries, director, and cast",
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Sort order (updated_at, title, rating, year)",
			Value: "updated_at",
		},
	}
}

// authCommand handles session management against the tracking backend.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the login session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in and persist the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account and log in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "status",
				Usage:  "Show the current session",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Clear the persisted session",
				Action: r.AuthLogout,
			},
			{
				Name:  "import",
				Usage: "Import a session token from a browser 'Copy as cURL' capture",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "curl",
						Usage: "cURL command from browser DevTools (Copy as cURL)",
					},
					&cli.StringFlag{
						Name:  "curl-file",
						Usage: "Path to .sh file containing the cURL command",
					},
				},
				Action: r.AuthImport,
			},
		},
	}
}

// moviesCommand handles movie catalog operations.
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"mv"},
		Usage:   "Browse the movie and TV catalog",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search the catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Media type (movie or tv)",
					},
					&cli.StringFlag{
						Name:  "genre",
						Usage: "Genre filter",
					},
					&cli.StringFlag{
						Name:  "year",
						Usage: "Year filter",
					},
					&cli.StringFlag{
						Name:  "region",
						Usage: "Region filter",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "exclude-marked",
						Usage: "Hide titles already in the library",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.MoviesSearch,
			},
			{
				Name:  "popular",
				Usage: "Show popular titles",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MoviesPopular,
			},
			{
				Name:  "detail",
				Usage: "Show one title's full metadata",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MoviesDetail,
			},
			{
				Name:   "genres",
				Usage:  "List the catalog's genre taxonomy",
				Action: r.MoviesGenres,
			},
			{
				Name:  "open",
				Usage: "Open a title's TMDB page in the browser",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Media type (movie or tv)",
						Value:   "movie",
					},
				},
				Action: r.MoviesOpen,
			},
			{
				Name:  "poster",
				Usage: "Download a title's poster image",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.MoviesPoster,
			},
		},
	}
}

// gamesCommand handles game catalog operations.
func gamesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "games",
		Usage: "Browse the game catalog",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search the game catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "genres",
						Usage: "Genre slug filter",
					},
					&cli.StringFlag{
						Name:  "platforms",
						Usage: "Platform id filter",
					},
					&cli.StringFlag{
						Name:  "ordering",
						Usage: "Sort order (e.g. -rating, -released)",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.GamesSearch,
			},
			{
				Name:  "popular",
				Usage: "Show popular games",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.GamesPopular,
			},
			{
				Name:  "detail",
				Usage: "Show one game's full metadata",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.GamesDetail,
			},
			{
				Name:   "genres",
				Usage:  "List the game genre taxonomy",
				Action: r.GamesGenres,
			},
		},
	}
}

// watchCommand handles watch status operations.
func watchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Manage watch status records",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List watch records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "status",
						Usage: "Filter by status (watched or want_to_watch)",
					},
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Page size",
						Value: 50,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.WatchList,
			},
			{
				Name:  "set",
				Usage: "Create or update a watch record",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Catalog movie id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "status",
						Usage:    "Watch status (watched or want_to_watch)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Title, stored with the record",
					},
					&cli.StringFlag{
						Name:  "rating",
						Usage: "Personal rating",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "Personal notes",
					},
				},
				Action: r.WatchSet,
			},
			{
				Name:  "remove",
				Usage: "Delete a watch record",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.WatchRemove,
			},
			{
				Name:  "fix",
				Usage: "Re-resolve one title's metadata against the catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.WatchFix,
			},
		},
	}
}

// tagsCommand handles tag edit and palette operations.
func tagsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "Manage custom tags on tracked titles",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a tag to a title",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Catalog movie id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "category",
						Aliases:  []string{"c"},
						Usage:    "Tag category (background_time or genre)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "tag",
						Usage:    "Tag value",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Title, stored with a new edit record",
					},
				},
				Action: r.TagsAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a tag from a title",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Catalog movie id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "category",
						Aliases:  []string{"c"},
						Usage:    "Tag category (background_time or genre)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "tag",
						Usage:    "Tag value",
						Required: true,
					},
				},
				Action: r.TagsRemove,
			},
			{
				Name:  "show",
				Usage: "Show a title's tag edit",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TagsShow,
			},
			{
				Name:  "palette",
				Usage: "Show or edit the local tag palette",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "add",
						Usage: "Tag to add to the palette",
					},
					&cli.StringFlag{
						Name:  "remove",
						Usage: "Tag to remove from the palette",
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "Category for --add/--remove (background_time or genre)",
					},
				},
				Action: r.TagsPalette,
			},
		},
	}
}

// libraryCommand handles the filtered library view and exports.
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "View and export the tracked library",
		Commands: []*cli.Command{
			{
				Name:  "view",
				Usage: "Show the filtered, paginated library",
				Flags: append(criteriaFlags(),
					&cli.IntFlag{
						Name:    "page",
						Aliases: []string{"p"},
						Usage:   "View page",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				),
				Action: r.LibraryView,
			},
			{
				Name:  "export",
				Usage: "Export the filtered library",
				Flags: append(criteriaFlags(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, markdown, text)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (base filename for csv, directory for markdown)",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Export name",
						Value: "library",
					},
				),
				Action: r.LibraryExport,
			},
		},
	}
}

// repairCommand handles bulk metadata backfills.
func repairCommand(r *Runner) *cli.Command {
	confirmFlag := func() cli.Flag {
		return &cli.BoolFlag{
			Name:  "yes",
			Usage: "Skip the confirmation prompt",
		}
	}

	return &cli.Command{
		Name:  "repair",
		Usage: "Bulk metadata backfills across all watch records",
		Commands: []*cli.Command{
			{
				Name:   "countries",
				Usage:  "Backfill production countries",
				Flags:  []cli.Flag{confirmFlag()},
				Action: r.RepairCountries,
			},
			{
				Name:   "overview",
				Usage:  "Backfill overviews",
				Flags:  []cli.Flag{confirmFlag()},
				Action: r.RepairOverview,
			},
			{
				Name:   "director",
				Usage:  "Backfill directors",
				Flags:  []cli.Flag{confirmFlag()},
				Action: r.RepairDirector,
			},
			{
				Name:   "cast",
				Usage:  "Backfill cast lists",
				Flags:  []cli.Flag{confirmFlag()},
				Action: r.RepairCast,
			},
		},
	}
}

// apiCommand handles direct API calls against the tracking backend.
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the tracking backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
			{
				Name:  "dump",
				Usage: "Dump the signed-in user's records and edits",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Save dump to api_dump.json",
					},
				},
				Action: r.APIDump,
			},
		},
	}
}

// setupCommand handles setup operations for the local store and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the local database and seed the tag palette",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Create a config.toml from the embedded template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the config file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "prefs",
				Usage: "Show or set stored UI preferences",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "auto-filter",
						Usage: "Apply criteria as they change in the TUI (true or false)",
					},
					&cli.StringFlag{
						Name:  "auto-search",
						Usage: "Search as you type (true or false)",
					},
				},
				Action: r.SetupPrefs,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive library management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive library TUI",
		Action:  r.TUI,
	}
}
