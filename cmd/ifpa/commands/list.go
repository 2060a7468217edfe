package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// listOptions are the flags shared by paginated list commands.
type listOptions struct {
	pageSize int
	max      int
	all      bool
	where    string
}

func (o *listOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.pageSize, "page-size", constants.DefaultPageSize, "items requested per page")
	cmd.Flags().IntVar(&o.max, "max", constants.DefaultListLimit, "maximum items to print")
	cmd.Flags().BoolVar(&o.all, "all", false, "fetch every page (fails beyond the safety cap)")
	cmd.Flags().StringVar(&o.where, "where", "", "filter expression over item fields, e.g. 'wppr_points > 500'")
}

// collect walks pages of query. With --all every item is fetched and more
// than MaxListResults is an error; otherwise iteration stops after --max
// matching items.
func collect[R, T any](ctx context.Context, query ifpa.PagedQuery[R, T], opts *listOptions) ([]T, error) {
	filter, err := compileWhere(opts.where)
	if err != nil {
		return nil, err
	}

	if opts.all {
		items, err := query.All(ctx, &ifpa.PaginationOptions{
			PageSize:   opts.pageSize,
			MaxResults: constants.MaxListResults,
		})
		if err != nil {
			return nil, err
		}

		return filterItems(items, filter)
	}

	var items []T

	for item, err := range query.Iterate(ctx, opts.pageSize) {
		if err != nil {
			return nil, err
		}

		ok, err := filter.Match(item)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		items = append(items, item)
		if opts.max > 0 && len(items) >= opts.max {
			break
		}
	}

	return items, nil
}

func filterItems[T any](items []T, filter *whereFilter) ([]T, error) {
	if filter == nil {
		return items, nil
	}

	matched := items[:0:0]

	for _, item := range items {
		ok, err := filter.Match(item)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, item)
		}
	}

	return matched, nil
}
