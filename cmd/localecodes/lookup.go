package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/nupi-ai/localecodes/codes/codeset"
	"github.com/nupi-ai/localecodes/codes/country"
	"github.com/nupi-ai/localecodes/codes/currency"
	"github.com/nupi-ai/localecodes/codes/language"
	"github.com/nupi-ai/localecodes/codes/region"
	"github.com/nupi-ai/localecodes/codes/script"
)

func newCountryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "country <alpha-2|alpha-3|numeric>",
		Short: "Show an ISO 3166-1 country",
		Args:  cobra.ExactArgs(1),
		RunE:  runCountry,
	}
	cmd.Flags().Bool("currencies", false, "Also list the currencies used in the country")
	return cmd
}

func newLanguageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "language <639-1|639-3>",
		Short: "Show an ISO 639 language",
		Args:  cobra.ExactArgs(1),
		RunE:  runLanguage,
	}
}

func newScriptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "script <alpha|numeric>",
		Short: "Show an ISO 15924 script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
}

func newCurrencyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency [alpha|numeric]",
		Short: "Show an ISO 4217 currency, or the currencies of an entity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCurrency,
	}
	cmd.Flags().String("entity", "", "List currencies used by this ISO 4217 entity name")
	return cmd
}

func newRegionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "region <numeric>",
		Short: "Show a UN M49 region",
		Args:  cobra.ExactArgs(1),
		RunE:  runRegion,
	}
}

func newCodesetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codeset <name|alias>",
		Short: "Show an IANA character set",
		Args:  cobra.ExactArgs(1),
		RunE:  runCodeset,
	}
}

type countryView struct {
	country.Info `json:",inline" yaml:",inline"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Region       string   `json:"region,omitempty" yaml:"region,omitempty"`
	SubRegion    string   `json:"sub_region,omitempty" yaml:"sub_region,omitempty"`
	Currencies   []string `json:"currencies,omitempty" yaml:"currencies,omitempty"`
}

func (v countryView) renderText(w io.Writer) {
	fs := fields{
		{"Code", v.Code},
		{"Short code", v.ShortCode},
		{"Numeric", v.NumericString()},
		{"Name", orDash(v.Name)},
		{"Region", regionLabel(v.RegionCode, v.Region)},
		{"Sub-region", regionLabel(v.SubRegionCode, v.SubRegion)},
		{"Intermediate region", regionLabel(v.IntermediateRegionCode, regionName(v.IntermediateRegionCode))},
	}
	if v.Currencies != nil {
		fs = append(fs, [2]string{"Currencies", strings.Join(v.Currencies, ", ")})
	}
	fs.renderText(w)
}

func runCountry(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	arg := args[0]

	var info country.Info
	var ok bool
	if n, numeric, err := parseNumeric(arg); err != nil {
		return err
	} else if numeric {
		info, ok = country.LookupByNumeric(n)
	} else {
		code := strings.ToUpper(arg)
		if err := country.CheckCode(code); err != nil {
			return err
		}
		info, ok = country.Lookup(code)
	}
	if !ok {
		return noData(arg)
	}

	view := countryView{
		Info:      info,
		Name:      regionName(&info.CountryCode),
		Region:    regionName(info.RegionCode),
		SubRegion: regionName(info.SubRegionCode),
	}
	if withCurrencies, _ := cmd.Flags().GetBool("currencies"); withCurrencies {
		view.Currencies = []string{}
		for _, c := range currenciesFor(view.Name) {
			view.Currencies = append(view.Currencies, c.AlphabeticCode)
		}
	}
	return out.Print(view)
}

// currenciesFor resolves a UN area name to ISO 4217 currencies. The two
// standards spell some names differently, so an exact match is tried first
// and then a case-insensitive one that ignores ISO's trailing "(the)".
func currenciesFor(name string) []currency.Info {
	if name == "" {
		return nil
	}
	if exact := currency.ForEntityName(name); len(exact) > 0 {
		return exact
	}
	var out []currency.Info
	for _, code := range currency.AllAlphaCodes() {
		info, _ := currency.LookupByAlpha(code)
		for _, entity := range info.StandardsEntities {
			if strings.EqualFold(strings.TrimSuffix(entity, " (the)"), name) {
				out = append(out, info)
				break
			}
		}
	}
	return out
}

func regionName(code *uint16) string {
	if code == nil {
		return ""
	}
	info, _ := region.Lookup(*code)
	return info.Name
}

func regionLabel(code *uint16, name string) string {
	if code == nil {
		return "-"
	}
	if name == "" {
		return strconv.Itoa(int(*code))
	}
	return fmt.Sprintf("%d (%s)", *code, name)
}

type languageView struct {
	language.Info `json:",inline" yaml:",inline"`
	Tag           string `json:"bcp47,omitempty" yaml:"bcp47,omitempty"`
	Family        string `json:"family,omitempty" yaml:"family,omitempty"`
}

func (v languageView) renderText(w io.Writer) {
	fs := fields{
		{"Code", v.Code},
		{"Short code", orDash(deref(v.ShortCode))},
		{"Name", v.ReferenceName},
		{"Indigenous name", orDash(deref(v.IndigenousName))},
		{"Bibliographic code", orDash(deref(v.BibliographicCode))},
		{"Terminology code", orDash(deref(v.TerminologyCode))},
		{"Scope", v.Class.String()},
		{"Type", v.Type.String()},
		{"BCP 47", orDash(v.Tag)},
	}
	if len(v.OtherNames) > 0 {
		fs = append(fs, [2]string{"Other names", strings.Join(v.OtherNames, ", ")})
	}
	if v.Family != "" {
		fs = append(fs, [2]string{"Macrolanguage", v.Family})
	}
	if len(v.FamilyMembers) > 0 {
		fs = append(fs, [2]string{"Members", strings.Join(v.FamilyMembers, ", ")})
	}
	fs.renderText(w)
}

func runLanguage(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	code := strings.ToLower(args[0])
	if err := language.CheckCode(code); err != nil {
		return err
	}

	info, ok := language.Lookup(code)
	if !ok && len(code) == 3 {
		info, ok = language.LookupByBibliographicCode(code)
	}
	if !ok {
		return noData(args[0])
	}

	view := languageView{Info: info}
	if tag, err := info.Tag(); err == nil {
		view.Tag = tag.String()
	}
	if family, ok := language.FamilyOf(info.Code); ok {
		view.Family = fmt.Sprintf("%s (%s)", family.Code, family.ReferenceName)
	}
	return out.Print(view)
}

type scriptView struct {
	script.Info `json:",inline" yaml:",inline"`
}

func (v scriptView) renderText(w io.Writer) {
	fields{
		{"Code", v.AlphabeticCode},
		{"Numeric", fmt.Sprintf("%03d", v.NumericCode)},
		{"Name", v.Name},
		{"Alias", orDash(deref(v.Alias))},
	}.renderText(w)
}

func runScript(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	arg := args[0]

	var info script.Info
	var ok bool
	if n, numeric, err := parseNumeric(arg); err != nil {
		return err
	} else if numeric {
		info, ok = script.LookupByNumeric(n)
	} else {
		code := titleCase(arg)
		if err := script.CheckAlpha(code); err != nil {
			return err
		}
		info, ok = script.LookupByAlpha(code)
	}
	if !ok {
		return noData(arg)
	}
	return out.Print(scriptView{Info: info})
}

type currencyView struct {
	currency.Info `json:",inline" yaml:",inline"`
}

func (v currencyView) renderText(w io.Writer) {
	numeric := "-"
	if v.NumericCode != nil {
		numeric = fmt.Sprintf("%03d", *v.NumericCode)
	}
	units := "-"
	if n, ok := v.MinorUnits(); ok {
		units = strconv.Itoa(int(n))
	}
	fields{
		{"Code", v.AlphabeticCode},
		{"Numeric", numeric},
		{"Name", v.Name},
		{"Symbol", orDash(deref(v.Symbol))},
		{"Minor units", units},
		{"Entities", strings.Join(v.StandardsEntities, "; ")},
	}.renderText(w)
}

type currencyList []currencyView

func (l currencyList) renderText(w io.Writer) {
	for i, v := range l {
		if i > 0 {
			fmt.Fprintln(w)
		}
		v.renderText(w)
	}
}

func runCurrency(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	entity, _ := cmd.Flags().GetString("entity")

	switch {
	case entity != "" && len(args) > 0:
		return fmt.Errorf("give either a currency code or --entity, not both")
	case entity != "":
		found := currency.ForEntityName(entity)
		if len(found) == 0 {
			return noData(entity)
		}
		list := make(currencyList, len(found))
		for i, info := range found {
			list[i] = currencyView{Info: info}
		}
		return out.Print(list)
	case len(args) == 0:
		return fmt.Errorf("a currency code or --entity is required")
	}

	arg := args[0]
	var info currency.Info
	var ok bool
	if n, numeric, err := parseNumeric(arg); err != nil {
		return err
	} else if numeric {
		info, ok = currency.LookupByNumeric(n)
	} else {
		code := strings.ToUpper(arg)
		if err := currency.CheckAlpha(code); err != nil {
			return err
		}
		info, ok = currency.LookupByAlpha(code)
	}
	if !ok {
		return noData(arg)
	}
	return out.Print(currencyView{Info: info})
}

type regionView struct {
	region.Info `json:",inline" yaml:",inline"`
}

func (v regionView) renderText(w io.Writer) {
	fields{
		{"Code", fmt.Sprintf("%03d", v.Code)},
		{"Name", v.Name},
	}.renderText(w)
}

func runRegion(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	n, numeric, err := parseNumeric(args[0])
	if err != nil {
		return err
	}
	if !numeric {
		return fmt.Errorf("region code %q is not numeric", args[0])
	}
	info, ok := region.Lookup(n)
	if !ok {
		return noData(args[0])
	}
	return out.Print(regionView{Info: info})
}

type codesetView struct {
	codeset.Info `json:",inline" yaml:",inline"`
	Supported    bool `json:"supported" yaml:"supported"`
}

func (v codesetView) renderText(w io.Writer) {
	supported := "no"
	if v.Supported {
		supported = "yes"
	}
	fields{
		{"Name", v.Name},
		{"Aliases", orDash(strings.Join(v.AlsoKnownAs, ", "))},
		{"MIB", strconv.FormatUint(uint64(v.MIBCode), 10)},
		{"Source", orDash(deref(v.Source))},
		{"References", orDash(deref(v.References))},
		{"Codec available", supported},
	}.renderText(w)
}

func runCodeset(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	name := args[0]
	if err := codeset.CheckName(name); err != nil {
		return err
	}
	info, ok := codeset.LookupAlias(name)
	if !ok {
		return noData(name)
	}
	_, supported := codeset.Encoding(info.Name)
	return out.Print(codesetView{Info: info, Supported: supported})
}

// parseNumeric reports whether arg is all digits and, if so, its value.
func parseNumeric(arg string) (uint16, bool, error) {
	if arg == "" {
		return 0, false, nil
	}
	for _, r := range arg {
		if r < '0' || r > '9' {
			return 0, false, nil
		}
	}
	n, err := strconv.ParseUint(arg, 10, 16)
	if err != nil {
		return 0, true, fmt.Errorf("numeric code %q out of range", arg)
	}
	return uint16(n), true, nil
}

func titleCase(s string) string {
	rs := []rune(strings.ToLower(s))
	if len(rs) > 0 {
		rs[0] = unicode.ToUpper(rs[0])
	}
	return string(rs)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
