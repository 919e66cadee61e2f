package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"musicschool/pkg/models"
)

type searchFlags struct {
	q, genre, price, sort string
}

func (f *searchFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.q, "q", "", "search term (title, description, instructor)")
	cmd.Flags().StringVar(&f.genre, "genre", "", "genre, e.g. Guitar or Jazz")
	cmd.Flags().StringVar(&f.price, "price", "", "price bracket: all, under-100, 100-150, over-150")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort key: title, price-low, price-high, featured")
}

func (f searchFlags) values() url.Values {
	v := url.Values{}
	for k, s := range map[string]string{"q": f.q, "genre": f.genre, "price": f.price, "sort": f.sort} {
		if s != "" {
			v.Set(k, s)
		}
	}
	return v
}

type courseList struct {
	Total int             `json:"total"`
	Items []models.Course `json:"items"`
}

func (a *app) coursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Search and inspect courses",
	}
	cmd.AddCommand(a.searchCmd(), a.featuredCmd(), a.showCmd(), a.watchCmd())
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter and sort the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw json.RawMessage
			if err := a.getJSON(cmd.Context(), "/courses", f.values(), &raw); err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			return a.printCourses(raw)
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) featuredCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List featured courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw json.RawMessage
			if err := a.getJSON(cmd.Context(), "/courses/featured", nil, &raw); err != nil {
				return fmt.Errorf("featured failed: %w", err)
			}
			return a.printCourses(raw)
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid course id %q", args[0])
			}
			var c models.Course
			if err := a.getJSON(cmd.Context(), "/courses/"+args[0], nil, &c); err != nil {
				return fmt.Errorf("show failed: %w", err)
			}
			if a.asJSON {
				return printJSON(a.out, c)
			}
			return writeKeyValues(a.out, [][2]string{
				{"ID", strconv.Itoa(c.ID)},
				{"Title", c.Title},
				{"Slug", c.Slug},
				{"Instructor", c.Instructor},
				{"Price", formatPrice(c.Price)},
				{"Featured", strconv.FormatBool(c.IsFeatured)},
				{"Description", c.Description},
			})
		},
	}
}

// watchCmd keeps a live search open and re-runs it whenever the server
// reloads its catalog.
func (a *app) watchCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run a live search and refresh on catalog reloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, f)
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) watch(ctx context.Context, f searchFlags) error {
	wsURL, err := websocketURL(a.baseURL, "/ws/search")
	if err != nil {
		return err
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	query := map[string]string{"q": f.q, "genre": f.genre, "price": f.price, "sort": f.sort}
	if err := conn.WriteJSON(query); err != nil {
		return err
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		var frame struct {
			Type  string `json:"type"`
			Error string `json:"error"`
		}
		if err := json.Unmarshal(msg, &frame); err != nil {
			return err
		}
		switch frame.Type {
		case "results":
			if err := a.printCourses(msg); err != nil {
				return err
			}
		case "catalog.reloaded":
			fmt.Fprintln(a.out, "-- catalog reloaded --")
			if err := conn.WriteJSON(query); err != nil {
				return err
			}
		case "error":
			return fmt.Errorf("server: %s", frame.Error)
		}
	}
}

func (a *app) printCourses(raw []byte) error {
	if a.asJSON {
		_, err := fmt.Fprintln(a.out, string(raw))
		return err
	}
	var list courseList
	if err := json.Unmarshal(raw, &list); err != nil {
		return err
	}
	if err := writeCourseTable(a.out, list.Items); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "%d courses found\n", list.Total)
	return err
}

func (a *app) optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the selectable genres, price brackets and sort keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts struct {
				Genres   []string `json:"genres"`
				Brackets []struct {
					Key   string `json:"key"`
					Label string `json:"label"`
				} `json:"brackets"`
				SortKeys []struct {
					Key   string `json:"key"`
					Label string `json:"label"`
				} `json:"sort_keys"`
			}
			if err := a.getJSON(cmd.Context(), "/search/options", nil, &opts); err != nil {
				return fmt.Errorf("options failed: %w", err)
			}
			if a.asJSON {
				return printJSON(a.out, opts)
			}

			rows := [][2]string{}
			for _, g := range opts.Genres {
				rows = append(rows, [2]string{"genre", g})
			}
			for _, b := range opts.Brackets {
				rows = append(rows, [2]string{"price", b.Key + "  " + b.Label})
			}
			for _, s := range opts.SortKeys {
				rows = append(rows, [2]string{"sort", s.Key + "  " + s.Label})
			}
			return writeKeyValues(a.out, rows)
		},
	}
}
