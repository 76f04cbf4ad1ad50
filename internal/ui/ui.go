package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/filter"
	"github.com/desertthunder/mvx/internal/library"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/repositories"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/tags"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LibraryView ViewState = iota
	FilterView
	PaletteView
	DetailView
	RepairView
	RepairResultView
)

// Filter view fields, in display order.
const (
	fieldStatus = iota
	fieldMediaType
	fieldRegion
	fieldGenre
	fieldYear
	fieldBackgroundTime
	fieldKeyword
	fieldSort
	fieldCount
)

var fieldNames = [fieldCount]string{
	"status", "media type", "region", "genre", "year", "background time", "keyword", "sort",
}

var (
	statusOptions = []string{filter.Any, models.StatusWatched, models.StatusWantToWatch}
	mediaOptions  = []string{
		filter.Any, filter.MediaMovie, filter.MediaTV, filter.MediaDocumentary,
		filter.MediaAnimation, filter.MediaAnimationMovie, filter.MediaLiveActionMovie,
	}
	regionOptions = []string{filter.Any, "中国大陆", "美国", "日本", "韩国", "英国", "法国"}
	genreOptions  = []string{
		filter.Any, "action", "comedy", "drama", "thriller", "horror",
		"romance", "science_fiction", "fantasy", "crime", "war",
	}
	yearOptions = []string{filter.Any, "2020s", "2010s", "2000s", "1990s", "1980s", "1970s", "1960s", "other"}
	sortOptions = []string{filter.SortUpdatedAt, filter.SortTitle, filter.SortRating, filter.SortYear}
)

var repairKinds = []string{"countries", "overview", "director", "cast"}

var repairLabels = map[string]string{
	"countries": "Backfill production countries",
	"overview":  "Backfill overviews",
	"director":  "Backfill directors",
	"cast":      "Backfill cast lists",
}

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	controller *library.Controller
	editor     *tags.Editor
	watch      *services.WatchService
	palette    *repositories.PaletteRepository
	logger     *log.Logger

	width  int
	height int

	recordList  list.Model
	cards       map[int]*library.Card
	paletteList list.Model
	target      *library.Card

	draft       filter.Criteria
	filterField int
	autoFilter  bool

	repairChoice  int
	repairArmed   bool
	repairRunning bool
	repairResult  *services.RepairResult
	repairErr     error

	status string
	err    error
	help   help.Model
	keys   keyMap
}

// ModelOpts carries the dependencies for [NewModel].
type ModelOpts struct {
	Controller *library.Controller
	Editor     *tags.Editor
	Watch      *services.WatchService
	Palette    *repositories.PaletteRepository
	Logger     *log.Logger
	// AutoFilter applies criteria as they change instead of waiting for enter.
	AutoFilter bool
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, opts ModelOpts) *Model {
	recordList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recordList.Title = "Library"

	paletteList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	paletteList.Title = "Tag palette"

	return &Model{
		ctx:         ctx,
		view:        LibraryView,
		controller:  opts.Controller,
		editor:      opts.Editor,
		watch:       opts.Watch,
		palette:     opts.Palette,
		logger:      opts.Logger,
		recordList:  recordList,
		cards:       map[int]*library.Card{},
		paletteList: paletteList,
		draft:       filter.DefaultCriteria(),
		autoFilter:  opts.AutoFilter,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init loads the library and the local tag palette.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadLibrary(), m.loadPalette())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recordList.SetSize(msg.Width-4, msg.Height-8)
		m.paletteList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case FilterView:
			return m.handleFilterKeys(msg)
		case PaletteView:
			return m.handlePaletteKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case RepairView:
			return m.handleRepairKeys(msg)
		case RepairResultView:
			return m.handleRepairResultKeys(msg)
		}

	case libraryLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.status = ""
		m.rebuildRecordList()
		return m, nil

	case paletteLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("palette unavailable: %v", msg.err)
			return m, nil
		}
		items := []list.Item{}
		for _, category := range msg.categories {
			for _, tag := range category.Tags {
				items = append(items, tagItem{
					category:     tags.Category(category.ID),
					categoryName: category.Name,
					tag:          tag,
				})
			}
		}
		m.paletteList.SetItems(items)
		return m, nil

	case tagAppliedMsg:
		if card := m.cards[msg.movieID]; card != nil {
			card.FinishDrop()
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("tag rejected: %v", msg.err)
			return m, nil
		}
		if !msg.changed {
			m.status = fmt.Sprintf("no change for %s", msg.tag)
			return m, nil
		}
		m.controller.ApplyEdit(msg.edit)
		m.rebuildRecordList()
		if msg.added {
			m.status = fmt.Sprintf("added %s", msg.tag)
		} else {
			m.status = fmt.Sprintf("removed %s", msg.tag)
		}
		return m, nil

	case fixDoneMsg:
		if card := m.cards[msg.movieID]; card != nil {
			card.FinishFix()
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("fix failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("%s: %d changes", msg.result.MovieTitle, msg.result.ChangesCount)
		return m, m.loadLibrary()

	case statusChangedMsg:
		if card := m.cards[msg.movieID]; card != nil {
			card.FinishDrop()
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("status change failed: %v", msg.err)
			return m, nil
		}
		return m, m.loadLibrary()

	case repairDoneMsg:
		m.repairRunning = false
		m.repairResult = msg.result
		m.repairErr = msg.err
		m.view = RepairResultView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LibraryView:
		return m.renderLibrary()
	case FilterView:
		return m.renderFilter()
	case PaletteView:
		return m.renderPalette()
	case DetailView:
		return m.renderDetail()
	case RepairView:
		return m.renderRepair()
	case RepairResultView:
		return m.renderRepairResult()
	default:
		return ""
	}
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "f":
		m.draft = m.controller.Criteria()
		m.filterField = 0
		m.view = FilterView
		return m, nil
	case "p":
		if card := m.selectedCard(); card != nil {
			m.target = card
			m.paletteList.Title = fmt.Sprintf("Tag '%s'", card.Record.MovieTitle)
			m.view = PaletteView
		}
		return m, nil
	case "enter":
		if card := m.selectedCard(); card != nil {
			m.target = card
			m.view = DetailView
		}
		return m, nil
	case "x":
		if card := m.selectedCard(); card != nil && card.BeginFix() {
			m.status = fmt.Sprintf("fixing %s", card.Record.MovieTitle)
			return m, m.runFix(card)
		}
		return m, nil
	case "s":
		if card := m.selectedCard(); card != nil && card.BeginDrop() {
			return m, m.toggleStatus(card)
		}
		return m, nil
	case "r":
		m.status = "reloading"
		return m, m.loadLibrary()
	case "R":
		m.repairChoice = 0
		m.repairArmed = false
		m.repairResult = nil
		m.repairErr = nil
		m.view = RepairView
		return m, nil
	case "left", "h":
		m.controller.PrevPage()
		m.rebuildRecordList()
		return m, nil
	case "right", "l":
		m.controller.NextPage()
		m.rebuildRecordList()
		return m, nil
	}

	var cmd tea.Cmd
	m.recordList, cmd = m.recordList.Update(msg)
	return m, cmd
}

func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = LibraryView
		return m, nil
	case "enter":
		m.controller.SetCriteria(m.draft)
		m.rebuildRecordList()
		m.view = LibraryView
		return m, nil
	case "up", "shift+tab":
		m.filterField = (m.filterField + fieldCount - 1) % fieldCount
		return m, nil
	case "down", "tab":
		m.filterField = (m.filterField + 1) % fieldCount
		return m, nil
	case "left":
		m.cycleField(-1)
		m.draftChanged()
		return m, nil
	case "right":
		m.cycleField(1)
		m.draftChanged()
		return m, nil
	case "ctrl+x":
		m.draft = filter.DefaultCriteria()
		m.draftChanged()
		return m, nil
	case "backspace":
		if m.filterField == fieldKeyword && m.draft.Keyword != "" {
			runes := []rune(m.draft.Keyword)
			m.draft.Keyword = string(runes[:len(runes)-1])
			m.draftChanged()
		}
		return m, nil
	case " ":
		if m.filterField == fieldKeyword {
			m.draft.Keyword += " "
			m.draftChanged()
		}
		return m, nil
	}

	if m.filterField == fieldKeyword && msg.Type == tea.KeyRunes {
		m.draft.Keyword += string(msg.Runes)
		m.draftChanged()
	}
	return m, nil
}

// draftChanged applies the draft criteria immediately when the auto-filter
// preference is on; otherwise criteria wait for enter.
func (m *Model) draftChanged() {
	if m.autoFilter {
		m.controller.SetCriteria(m.draft)
		m.rebuildRecordList()
	}
}

func (m *Model) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.status = ""
		m.view = LibraryView
		return m, nil
	case "enter":
		item, ok := m.paletteList.SelectedItem().(tagItem)
		if !ok || m.target == nil {
			return m, nil
		}
		if !m.target.BeginDrop() {
			m.status = "title is busy"
			return m, nil
		}
		return m, m.applyTag(m.target, item.category, item.tag)
	}

	var cmd tea.Cmd
	m.paletteList, cmd = m.paletteList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.view = LibraryView
	}
	return m, nil
}

func (m *Model) handleRepairKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.repairRunning {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.repairArmed {
			m.repairArmed = false
			return m, nil
		}
		m.view = LibraryView
	case "up", "k":
		if !m.repairArmed {
			m.repairChoice = (m.repairChoice + len(repairKinds) - 1) % len(repairKinds)
		}
	case "down", "j":
		if !m.repairArmed {
			m.repairChoice = (m.repairChoice + 1) % len(repairKinds)
		}
	case "enter":
		m.repairArmed = true
	case "y":
		if m.repairArmed {
			m.repairArmed = false
			m.repairRunning = true
			return m, m.runRepair(repairKinds[m.repairChoice])
		}
	case "n":
		m.repairArmed = false
	}
	return m, nil
}

func (m *Model) handleRepairResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.view = LibraryView
		return m, m.loadLibrary()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LibraryView:
		m.recordList, cmd = m.recordList.Update(msg)
	case PaletteView:
		m.paletteList, cmd = m.paletteList.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedCard() *library.Card {
	if item, ok := m.recordList.SelectedItem().(recordItem); ok {
		return item.card
	}
	return nil
}

// rebuildRecordList refreshes the visible page, reusing card instances so
// in-flight busy states survive a refilter.
func (m *Model) rebuildRecordList() {
	page := m.controller.CurrentPage()
	items := make([]list.Item, len(page))
	next := make(map[int]*library.Card, len(page))

	for i, record := range page {
		card, ok := m.cards[record.MovieID]
		if !ok {
			card = library.NewCard(record, m.controller.EditFor(record.MovieID))
		} else {
			card.Record = record
			card.Edit = m.controller.EditFor(record.MovieID)
		}
		next[record.MovieID] = card
		items[i] = recordItem{card: card}
	}

	m.cards = next
	m.recordList.SetItems(items)

	stats := m.controller.Stats()
	m.recordList.Title = fmt.Sprintf("Library · %d of %d titles · page %d/%d",
		stats.Filtered, stats.Total, m.controller.Page(), m.controller.TotalPages())
}

func (m *Model) cycleField(delta int) {
	switch m.filterField {
	case fieldStatus:
		m.draft.Status = cycle(statusOptions, m.draft.Status, delta)
	case fieldMediaType:
		m.draft.MediaType = cycle(mediaOptions, m.draft.MediaType, delta)
	case fieldRegion:
		m.draft.Region = cycle(regionOptions, m.draft.Region, delta)
	case fieldGenre:
		m.draft.Genre = cycle(genreOptions, m.draft.Genre, delta)
	case fieldYear:
		m.draft.Year = cycle(yearOptions, m.draft.Year, delta)
	case fieldBackgroundTime:
		m.draft.BackgroundTime = cycle(m.backgroundOptions(), m.draft.BackgroundTime, delta)
	case fieldSort:
		m.draft.SortBy = cycle(sortOptions, m.draft.SortBy, delta)
	}
}

func (m *Model) backgroundOptions() []string {
	options := []string{filter.Any, filter.NoBackgroundTime}
	return append(options, m.controller.BackgroundTimeOptions()...)
}

func cycle(options []string, current string, delta int) string {
	idx := 0
	for i, option := range options {
		if option == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func (m *Model) loadLibrary() tea.Cmd {
	return func() tea.Msg {
		return libraryLoadedMsg{err: m.controller.Load(m.ctx)}
	}
}

func (m *Model) loadPalette() tea.Cmd {
	return func() tea.Msg {
		if m.palette == nil {
			return paletteLoadedMsg{}
		}
		categories, err := m.palette.Palette()
		return paletteLoadedMsg{categories: categories, err: err}
	}
}

// applyTag toggles a palette tag on a title. The payload round-trips through
// the same validation the drop gesture uses.
func (m *Model) applyTag(card *library.Card, category tags.Category, tag string) tea.Cmd {
	movieID := card.Record.MovieID
	title := card.Record.MovieTitle
	current := card.Edit

	return func() tea.Msg {
		raw, err := json.Marshal(tags.DropPayload{CategoryID: string(category), Tag: tag})
		if err == nil {
			_, err = tags.DecodeDropPayload(raw)
		}
		if err != nil {
			return tagAppliedMsg{movieID: movieID, tag: tag, err: err}
		}

		field := ""
		if current != nil {
			if category == tags.CategoryGenre {
				field = current.CustomGenre
			} else {
				field = current.CustomBackgroundTime
			}
		}

		var edit models.TagEdit
		var changed bool
		added := !tags.Contains(field, tag)
		if added {
			edit, changed = m.editor.Add(m.ctx, current, movieID, title, category, tag)
		} else {
			edit, changed = m.editor.Remove(m.ctx, current, movieID, title, category, tag)
		}
		return tagAppliedMsg{movieID: movieID, tag: tag, edit: edit, changed: changed, added: added}
	}
}

func (m *Model) runFix(card *library.Card) tea.Cmd {
	movieID := card.Record.MovieID
	return func() tea.Msg {
		result, err := m.watch.FixMetadata(m.ctx, movieID)
		return fixDoneMsg{movieID: movieID, result: result, err: err}
	}
}

// toggleStatus flips a record between watched and want-to-watch. The backend
// upsert overwrites every metadata column from the posted payload, so the
// whole denormalized record goes back, not just the status.
func (m *Model) toggleStatus(card *library.Card) tea.Cmd {
	record := card.Record
	return func() tea.Msg {
		if record.Status == models.StatusWatched {
			record.Status = models.StatusWantToWatch
		} else {
			record.Status = models.StatusWatched
		}
		_, err := m.watch.Set(m.ctx, record)
		return statusChangedMsg{movieID: record.MovieID, err: err}
	}
}

func (m *Model) runRepair(kind string) tea.Cmd {
	return func() tea.Msg {
		var result *services.RepairResult
		var err error
		switch kind {
		case "countries":
			result, err = m.watch.RepairCountries(m.ctx)
		case "overview":
			result, err = m.watch.RepairOverview(m.ctx)
		case "director":
			result, err = m.watch.RepairDirector(m.ctx)
		case "cast":
			result, err = m.watch.RepairCast(m.ctx)
		}
		return repairDoneMsg{result: result, err: err}
	}
}

func (m *Model) renderLibrary() string {
	criteria := styles.help.Render(criteriaSummary(m.controller.Criteria()))

	statusLine := ""
	if m.status != "" {
		statusLine = styles.warn.Render(m.status) + "\n"
	}

	helpKeys := []key.Binding{m.keys.filter, m.keys.palette, m.keys.enter, m.keys.fix, m.keys.repair, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s%s", m.recordList.View(), criteria, statusLine, helpView)
}

func (m *Model) renderFilter() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Filter"))
	b.WriteString("\n")

	values := [fieldCount]string{
		m.draft.Status, m.draft.MediaType, m.draft.Region, m.draft.Genre,
		m.draft.Year, m.draft.BackgroundTime, m.draft.Keyword, m.draft.SortBy,
	}

	for i, name := range fieldNames {
		value := values[i]
		if value == "" && i != fieldKeyword {
			value = filter.Any
		}
		line := fmt.Sprintf("%-16s %s", name, value)
		if i == m.filterField {
			b.WriteString(styles.active.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("←/→ change · ↑/↓ field · type in keyword · ctrl+x clear · enter apply · esc cancel"))
	return b.String()
}

func (m *Model) renderPalette() string {
	statusLine := ""
	if m.status != "" {
		statusLine = styles.warn.Render(m.status) + "\n"
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s", m.paletteList.View(), statusLine, helpView)
}

func (m *Model) renderDetail() string {
	if m.target == nil {
		return styles.help.Render("Nothing selected\n\nPress esc to go back")
	}

	record := m.target.Record
	var b strings.Builder
	b.WriteString(styles.title.Render(record.MovieTitle))
	b.WriteString("\n")

	row := func(label, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", styles.label.Render(fmt.Sprintf("%-12s", label)), value))
		}
	}

	row("Status", statusLabel(record.Status))
	row("Type", record.MediaType)
	row("Air date", record.AirDate())
	if record.VoteAverage > 0 {
		row("Rating", fmt.Sprintf("%.1f", record.VoteAverage))
	}
	row("Region", record.ProductionCountries)
	row("Director", record.Director)
	row("Cast", record.Cast)
	row("Genres", m.target.GenreText())
	if edit := m.target.Edit; edit != nil {
		row("Background", edit.CustomBackgroundTime)
		row("Notes", edit.Notes)
	}

	overview := record.Overview
	if overview == "" {
		overview = "暂无简介"
	}
	b.WriteString(fmt.Sprintf("\n%s\n", overview))

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderRepair() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Bulk metadata repair"))
	b.WriteString("\n")

	for i, kind := range repairKinds {
		line := repairLabels[kind]
		if i == m.repairChoice {
			b.WriteString(styles.active.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.repairRunning:
		b.WriteString(styles.warn.Render("Running repair against the backend..."))
	case m.repairArmed:
		b.WriteString(styles.warn.Render(fmt.Sprintf(
			"Run '%s' against every record? (y/n)", repairLabels[repairKinds[m.repairChoice]])))
	default:
		b.WriteString(styles.help.Render("↑/↓ choose · enter confirm · esc back"))
	}
	return b.String()
}

func (m *Model) renderRepairResult() string {
	if m.repairErr != nil {
		return styles.err.Render(fmt.Sprintf("Repair failed: %v\n\nPress esc to go back, q to quit", m.repairErr))
	}
	if m.repairResult == nil {
		return styles.err.Render("No result available\n\nPress esc to go back, q to quit")
	}

	title := styles.ok.Render("✓ Repair complete")
	info := fmt.Sprintf("\nUpdated: %d\nFailed: %d\nProcessed: %d\n",
		m.repairResult.UpdatedCount, m.repairResult.FailedCount, m.repairResult.TotalProcessed)
	if m.repairResult.Message != "" {
		info += fmt.Sprintf("\n%s\n", m.repairResult.Message)
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func criteriaSummary(c filter.Criteria) string {
	parts := []string{}
	add := func(name, value string) {
		if value != filter.Any && value != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", name, value))
		}
	}
	add("status", c.Status)
	add("type", c.MediaType)
	add("region", c.Region)
	add("genre", c.Genre)
	add("year", c.Year)
	add("background", c.BackgroundTime)
	if strings.TrimSpace(c.Keyword) != "" {
		parts = append(parts, fmt.Sprintf("keyword=%q", c.Keyword))
	}
	if len(parts) == 0 {
		parts = append(parts, "no filters")
	}
	parts = append(parts, fmt.Sprintf("sort=%s", c.SortBy))
	return strings.Join(parts, "  ")
}
