package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/traversalgroup/pkg/codec"
)

// newDecodeCmd creates the decode command, the inverse of encode.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode integers back into permutations, graphs, sets, and sequences",
		Long: `Decode the integer representations produced by encode.

Examples:
  traversalgroup decode perm 2              # Smallest permutation of rank 2
  traversalgroup decode perm 2 -n 4         # Same rank over 4 letters
  traversalgroup decode altperm 3 -n 3      # Inversion-sequence rank
  traversalgroup decode graph 7             # Smallest graph of index 7
  traversalgroup decode set 517
  traversalgroup decode seq 20
  traversalgroup decode group "[0,3,4]" -n 3
  traversalgroup decode class "[[[],1],[[1],3],[[0,1],2]]"`,
	}

	cmd.AddCommand(decodePermCmd())
	cmd.AddCommand(decodeAltPermCmd())
	cmd.AddCommand(decodeGraphCmd())
	cmd.AddCommand(decodeSetCmd())
	cmd.AddCommand(decodeSeqCmd())
	cmd.AddCommand(decodeGroupCmd())
	cmd.AddCommand(decodeClassCmd())

	return cmd
}

func decodePermCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "perm <rank>",
		Short: "Unrank a permutation",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			rank, err := parseBig(args[0])
			if err != nil {
				return err
			}
			p, err := codec.DecodePermutation(rank, n)
			if err != nil {
				return err
			}
			fmt.Println(formatImages(p))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "letters", "n", 1, "number of letters (grown as needed to fit the rank)")
	return cmd
}

func decodeAltPermCmd() *cobra.Command {
	var n, threshold int
	cmd := &cobra.Command{
		Use:   "altperm <rank>",
		Short: "Unrank a permutation from its inversion-sequence rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			rank, err := parseBig(args[0])
			if err != nil {
				return err
			}
			p, err := codec.AltDecodePermutation(rank, n, threshold)
			if err != nil {
				return err
			}
			fmt.Println(formatImages(p))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "letters", "n", 0, "number of letters (required, the rank alone does not determine it)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "length above which the divide-and-conquer counter is used (0 for the default)")
	_ = cmd.MarkFlagRequired("letters")
	return cmd
}

func decodeGraphCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "graph <index>",
		Short: "Decode a graph from its edge-bitmask index",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			index, err := parseBig(args[0])
			if err != nil {
				return err
			}
			g, err := codec.DecodeGraph(index, n)
			if err != nil {
				return err
			}
			fmt.Println(formatEdges(g))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "nodes", "n", 1, "number of nodes (grown as needed to fit the index)")
	return cmd
}

func decodeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <index>",
		Short: "Decode a set from its membership bitmask",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			index, err := parseBig(args[0])
			if err != nil {
				return err
			}
			elements, err := codec.DecodeSet(index)
			if err != nil {
				return err
			}
			fmt.Println(joinInts(elements))
			return nil
		},
	}
}

func decodeSeqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seq <index>",
		Short: "Decode a sequence from its prime-power product",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			index, err := parseBig(args[0])
			if err != nil {
				return err
			}
			entries, err := codec.DecodeSequence(index)
			if err != nil {
				return err
			}
			fmt.Println(joinInts(entries))
			return nil
		},
	}
}

func decodeGroupCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "group <ranks-json>",
		Short: "Decode a group from its sorted element ranks",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			group, err := codec.DecodeGroup(args[0], n)
			if err != nil {
				return err
			}
			for _, p := range group.Elements() {
				fmt.Println(formatImages(p))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "letters", "n", 1, "number of letters the elements act on")
	_ = cmd.MarkFlagRequired("letters")
	return cmd
}

func decodeClassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "class <class-json>",
		Short: "Decode a group class into its cycle-profile tallies",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tallies, err := codec.DecodeGroupClass(args[0])
			if err != nil {
				return err
			}
			for _, tally := range tallies {
				fmt.Printf("%d x [%s]\n", tally.Count, joinInts(tally.Profile))
			}
			return nil
		},
	}
}

func joinInts(xs []int) string {
	fields := make([]string, len(xs))
	for i, x := range xs {
		fields[i] = strconv.Itoa(x)
	}
	return strings.Join(fields, " ")
}
