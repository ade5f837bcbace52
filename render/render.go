// Package render builds HTML fragments for medals and badges and mounts
// them on a Target.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrNothingToRender is returned for a nil item or an empty list.
var ErrNothingToRender = errors.New("invalid payload: missing medal data")

// MountError is returned when the target rejects a rendered element.
type MountError struct {
	Kind Kind
	Err  error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount %s: %v", e.Kind, e.Err)
}

func (e *MountError) Unwrap() error { return e.Err }

// Item is anything that renders as a medal.
type Item struct {
	ID          string
	Name        string
	Description string
	Style       *Style
	// Progress is a percentage. Nil hides the progress bar.
	Progress        *decimal.Decimal
	VerificationURL string
}

type ModalOptions struct {
	ModalBgColor          string
	ModalBorderRadius     string
	ButtonBgColor         string
	ButtonHoverColor      string
	ButtonTextColor       string
	TitleTextColor        string
	DescriptionTextColor  string
	ButtonCloseColor      string
	ButtonCloseHoverColor string
	ShareLabel            string
}

var defaultModalOptions = ModalOptions{
	ModalBgColor:          "bg-foreground",
	ModalBorderRadius:     "rounded-xl",
	ButtonBgColor:         "bg-primary",
	ButtonHoverColor:      "",
	ButtonTextColor:       "text-foreground",
	TitleTextColor:        "text-primary",
	DescriptionTextColor:  "text-primary",
	ButtonCloseColor:      "text-primary",
	ButtonCloseHoverColor: "text-primary",
	ShareLabel:            "Share",
}

func (o *ModalOptions) withDefaults() ModalOptions {
	d := defaultModalOptions
	if o == nil {
		return d
	}
	return ModalOptions{
		ModalBgColor:          firstNonEmpty(o.ModalBgColor, d.ModalBgColor),
		ModalBorderRadius:     firstNonEmpty(o.ModalBorderRadius, d.ModalBorderRadius),
		ButtonBgColor:         firstNonEmpty(o.ButtonBgColor, d.ButtonBgColor),
		ButtonHoverColor:      firstNonEmpty(o.ButtonHoverColor, d.ButtonHoverColor),
		ButtonTextColor:       firstNonEmpty(o.ButtonTextColor, d.ButtonTextColor),
		TitleTextColor:        firstNonEmpty(o.TitleTextColor, d.TitleTextColor),
		DescriptionTextColor:  firstNonEmpty(o.DescriptionTextColor, d.DescriptionTextColor),
		ButtonCloseColor:      firstNonEmpty(o.ButtonCloseColor, d.ButtonCloseColor),
		ButtonCloseHoverColor: firstNonEmpty(o.ButtonCloseHoverColor, d.ButtonCloseHoverColor),
		ShareLabel:            firstNonEmpty(o.ShareLabel, d.ShareLabel),
	}
}

type ViewerOptions struct {
	Size      string
	BgColor   string
	TextColor string
	// ShowTitle defaults to false for a single medal and true for lists.
	ShowTitle       *bool
	ShowDescription bool
	// Title is the gallery heading.
	Title string
}

// ContainerOptions configure an inline grid of medals.
type ContainerOptions struct {
	ViewerOptions
	ContainerClass string
	GridClass      string
}

const defaultGridClass = "grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-5 gap-4"

func (o *ViewerOptions) withDefaults(bgColor string, showTitle bool) ViewerOptions {
	out := ViewerOptions{
		Size:      "w-[100px]",
		BgColor:   bgColor,
		TextColor: "text-black",
		ShowTitle: &showTitle,
		Title:     "Your medals:",
	}
	if o == nil {
		return out
	}
	out.Size = firstNonEmpty(o.Size, out.Size)
	out.BgColor = firstNonEmpty(o.BgColor, out.BgColor)
	out.TextColor = firstNonEmpty(o.TextColor, out.TextColor)
	out.Title = firstNonEmpty(o.Title, out.Title)
	out.ShowDescription = o.ShowDescription
	if o.ShowTitle != nil {
		out.ShowTitle = o.ShowTitle
	}
	return out
}

type RendererOpts struct {
	// Target defaults to a new Body.
	Target Target
	Logger zerolog.Logger
}

// Renderer turns items into Elements. It is safe for concurrent use.
type Renderer struct {
	mu     sync.RWMutex
	target Target
	log    zerolog.Logger
}

func NewRenderer(opts RendererOpts) *Renderer {
	if opts.Target == nil {
		opts.Target = NewBody()
	}
	return &Renderer{
		target: opts.Target,
		log:    opts.Logger,
	}
}

// Target returns the target Show* methods mount on.
func (r *Renderer) Target() Target {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.target
}

// SetTarget replaces the mount target. Renders already in flight keep
// the target they started with.
func (r *Renderer) SetTarget(t Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = t
}

type badgeView struct {
	Descriptor
	IconPath string
}

type progressView struct {
	Percent string
}

type modalView struct {
	Item     *Item
	Opts     ModalOptions
	Badge    badgeView
	Progress *progressView
}

type medalView struct {
	Item            *Item
	Opts            ViewerOptions
	Wrapper         string
	Badge           badgeView
	ShowTitle       bool
	ShowDescription bool
	Progress        *progressView
}

type listView struct {
	ViewerOptions
	ContainerClass string
	GridClass      string
	Medals         []medalView
}

func newBadgeView(s *Style) badgeView {
	d := Resolve(s)
	return badgeView{Descriptor: d, IconPath: IconPath(d.IconName)}
}

func newProgressView(p *decimal.Decimal) *progressView {
	if p == nil {
		return nil
	}
	return &progressView{Percent: RoundProgress(*p).String()}
}

func newMedalView(item *Item, opts ViewerOptions) medalView {
	return medalView{
		Item:            item,
		Opts:            opts,
		Wrapper:         joinClasses("p-4", opts.Size),
		Badge:           newBadgeView(item.Style),
		ShowTitle:       opts.ShowTitle != nil && *opts.ShowTitle,
		ShowDescription: opts.ShowDescription,
		Progress:        newProgressView(item.Progress),
	}
}

// Modal renders item as an unlock modal. opts may be nil.
func (r *Renderer) Modal(item *Item, opts *ModalOptions) (Element, error) {
	if item == nil {
		return Element{}, ErrNothingToRender
	}

	view := modalView{
		Item:     item,
		Opts:     opts.withDefaults(),
		Badge:    newBadgeView(item.Style),
		Progress: newProgressView(item.Progress),
	}
	return execute(KindModal, item.ID, view)
}

// Medal renders a single medal. opts may be nil.
func (r *Renderer) Medal(item *Item, opts *ViewerOptions) (Element, error) {
	if item == nil {
		return Element{}, ErrNothingToRender
	}

	return execute(KindMedal, item.ID, newMedalView(item, opts.withDefaults("bg-white", false)))
}

// Gallery renders every item in a closable overlay.
func (r *Renderer) Gallery(items []Item, opts *ViewerOptions) (Element, error) {
	if len(items) == 0 {
		return Element{}, ErrNothingToRender
	}

	o := opts.withDefaults("bg-white", true)
	// Gallery entries always carry their title.
	entry := o
	entry.ShowTitle = boolPtr(true)

	view := listView{ViewerOptions: o, GridClass: defaultGridClass}
	for i := range items {
		view.Medals = append(view.Medals, newMedalView(&items[i], entry))
	}
	return execute(KindGallery, "", view)
}

// Container renders items as an inline grid. opts may be nil.
func (r *Renderer) Container(items []Item, opts *ContainerOptions) (Element, error) {
	if len(items) == 0 {
		return Element{}, ErrNothingToRender
	}

	var (
		vo             *ViewerOptions
		containerClass = "p-4"
		gridClass      = defaultGridClass
	)
	if opts != nil {
		vo = &opts.ViewerOptions
		containerClass = firstNonEmpty(opts.ContainerClass, containerClass)
		gridClass = firstNonEmpty(opts.GridClass, gridClass)
	}
	o := vo.withDefaults("bg-transparent", true)

	view := listView{ViewerOptions: o, ContainerClass: containerClass, GridClass: gridClass}
	for i := range items {
		view.Medals = append(view.Medals, newMedalView(&items[i], o))
	}
	return execute(KindContainer, "", view)
}

// ShowModal renders item with Modal and mounts it.
func (r *Renderer) ShowModal(item *Item, opts *ModalOptions) (Element, error) {
	return r.show(func() (Element, error) { return r.Modal(item, opts) })
}

// ShowMedal renders item with Medal and mounts it.
func (r *Renderer) ShowMedal(item *Item, opts *ViewerOptions) (Element, error) {
	return r.show(func() (Element, error) { return r.Medal(item, opts) })
}

// ShowGallery renders items with Gallery and mounts the overlay.
func (r *Renderer) ShowGallery(items []Item, opts *ViewerOptions) (Element, error) {
	return r.show(func() (Element, error) { return r.Gallery(items, opts) })
}

// ShowContainer renders items with Container, mounts the grid and returns it.
func (r *Renderer) ShowContainer(items []Item, opts *ContainerOptions) (Element, error) {
	return r.show(func() (Element, error) { return r.Container(items, opts) })
}

func (r *Renderer) show(build func() (Element, error)) (el Element, err error) {
	target := r.Target()

	defer func() {
		if err != nil {
			r.log.Error().Err(err).Str("kind", string(el.Kind)).Msg("render failed")
		}
	}()

	el, err = build()
	if err != nil {
		return el, err
	}

	if err = mount(target, el); err != nil {
		return el, &MountError{Kind: el.Kind, Err: err}
	}
	return el, nil
}

func mount(t Target, el Element) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.Mount(el)
}

func execute(kind Kind, id string, data interface{}) (Element, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return Element{}, fmt.Errorf("render %s: %w", kind, err)
	}
	return Element{Kind: kind, ID: id, HTML: template.HTML(buf.String())}, nil
}

func boolPtr(v bool) *bool {
	return &v
}
