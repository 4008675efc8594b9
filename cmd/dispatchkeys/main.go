// dispatchkeys inspects the dispatch key enumeration: the priority order that
// decides which kernel handles an operation, what each alias key expands to,
// and which key wins for a given key set.
//
// Examples:
//
//	dispatchkeys -keys
//	dispatchkeys -expand Autograd
//	dispatchkeys -set CPU,AutogradCPU,SparseCPU
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/tessera-ml/tessera/pkg/core/dispatch"
	"k8s.io/klog/v2"
)

var (
	flagKeys = flag.Bool("keys", false,
		"List every dispatch key in decreasing priority order, with its kind and alias coverage.")
	flagExpand = flag.String("expand", "",
		"Show the expansion of the given key. Aliases (Autograd, Math) expand to their composite set, "+
			"concrete keys to their own singleton.")
	flagSet = flag.String("set", "",
		"Comma-separated list of keys, e.g. \"CPU,AutogradCPU\". Renders the set and reports which "+
			"key wins dispatch.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if flag.NArg() > 0 {
		klog.Errorf("Unexpected argument %q. See 'dispatchkeys -help'.", flag.Arg(0))
		os.Exit(1)
	}
	ran := false
	if *flagKeys {
		listKeys()
		ran = true
	}
	if *flagExpand != "" {
		expand(*flagExpand)
		ran = true
	}
	if *flagSet != "" {
		inspectSet(*flagSet)
		ran = true
	}
	if !ran {
		flag.Usage()
		os.Exit(1)
	}
}

// keyKind classifies a key for display.
func keyKind(k dispatch.Key) string {
	switch {
	case k.IsAlias():
		return "alias"
	case k.IsAutograd():
		return "autograd"
	case k.IsBackend():
		return "backend"
	default:
		return "functional"
	}
}

// aliasCoverage lists the alias keys whose expansion includes k.
func aliasCoverage(k dispatch.Key) string {
	var covered []string
	for _, alias := range []dispatch.Key{dispatch.KeyAutograd, dispatch.KeyMath} {
		if dispatch.IsIncludedInAlias(k, alias) {
			covered = append(covered, alias.String())
		}
	}
	if len(covered) == 0 {
		return "-"
	}
	return strings.Join(covered, ", ")
}

func listKeys() {
	fmt.Println(titleStyle.Render("Dispatch Keys"))
	table := newPlainTable(true, lipgloss.Right, lipgloss.Right, lipgloss.Left, lipgloss.Left, lipgloss.Left)
	table.Row("priority", "ordinal", "key", "kind", "covered by")

	var numRuntime int
	keys := dispatch.KeyValues()
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		if k == dispatch.KeyUndefined || k.IsAlias() {
			continue
		}
		numRuntime++
		table.Row(
			humanize.Ordinal(numRuntime),
			fmt.Sprintf("%d", k),
			k.String(),
			keyKind(k),
			aliasCoverage(k),
		)
	}
	fmt.Println(table.Render())
	fmt.Printf("%s runtime keys; alias keys: Autograd, Math.\n",
		humanize.Comma(int64(numRuntime)))
}

func expand(name string) {
	k := must.M1(dispatch.KeyString(name))
	ks := dispatch.ExpandAlias(k)
	fmt.Println(titleStyle.Render(fmt.Sprintf("Expansion of %s", k)))
	fmt.Printf("%s (%s keys)\n", ks, humanize.Comma(int64(ks.Len())))
}

func inspectSet(spec string) {
	var keys []dispatch.Key
	for _, name := range strings.Split(spec, ",") {
		keys = append(keys, must.M1(dispatch.KeyString(strings.TrimSpace(name))))
	}
	ks := dispatch.NewKeySet(keys...)
	fmt.Println(titleStyle.Render("Key Set"))
	fmt.Println(ks)
	if top := ks.HighestPriorityKey(); top != dispatch.KeyUndefined {
		fmt.Printf("dispatches to: %s\n", top)
	} else {
		fmt.Println("empty set: nothing to dispatch to")
	}
}
