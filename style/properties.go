package style

// Property values are `any` because every property accepts either a literal
// or an Expression.

// Visibility values.
const (
	Visible = "visible"
	None    = "none"
)

// Layout holds layout properties. Unset properties are omitted on the wire.
type Layout struct {
	Visibility any `json:"visibility,omitempty"`

	FillSortKey any `json:"fill-sort-key,omitempty"`

	LineCap        any `json:"line-cap,omitempty"`
	LineJoin       any `json:"line-join,omitempty"`
	LineMiterLimit any `json:"line-miter-limit,omitempty"`
	LineRoundLimit any `json:"line-round-limit,omitempty"`
	LineSortKey    any `json:"line-sort-key,omitempty"`

	CircleSortKey any `json:"circle-sort-key,omitempty"`

	SymbolPlacement any `json:"symbol-placement,omitempty"`
	SymbolSpacing   any `json:"symbol-spacing,omitempty"`
	SymbolSortKey   any `json:"symbol-sort-key,omitempty"`
	SymbolZOrder    any `json:"symbol-z-order,omitempty"`

	IconImage           any `json:"icon-image,omitempty"`
	IconSize            any `json:"icon-size,omitempty"`
	IconAnchor          any `json:"icon-anchor,omitempty"`
	IconOffset          any `json:"icon-offset,omitempty"`
	IconRotate          any `json:"icon-rotate,omitempty"`
	IconAllowOverlap    any `json:"icon-allow-overlap,omitempty"`
	IconIgnorePlacement any `json:"icon-ignore-placement,omitempty"`

	TextField          any `json:"text-field,omitempty"`
	TextFont           any `json:"text-font,omitempty"`
	TextSize           any `json:"text-size,omitempty"`
	TextAnchor         any `json:"text-anchor,omitempty"`
	TextOffset         any `json:"text-offset,omitempty"`
	TextMaxWidth       any `json:"text-max-width,omitempty"`
	TextTransform      any `json:"text-transform,omitempty"`
	TextAllowOverlap   any `json:"text-allow-overlap,omitempty"`
	TextVariableAnchor any `json:"text-variable-anchor,omitempty"`
}

// Paint holds paint properties. Unset properties are omitted on the wire.
type Paint struct {
	BackgroundColor   any `json:"background-color,omitempty"`
	BackgroundOpacity any `json:"background-opacity,omitempty"`
	BackgroundPattern any `json:"background-pattern,omitempty"`

	FillColor        any `json:"fill-color,omitempty"`
	FillOpacity      any `json:"fill-opacity,omitempty"`
	FillOutlineColor any `json:"fill-outline-color,omitempty"`
	FillPattern      any `json:"fill-pattern,omitempty"`
	FillAntialias    any `json:"fill-antialias,omitempty"`
	FillTranslate    any `json:"fill-translate,omitempty"`

	LineColor     any `json:"line-color,omitempty"`
	LineWidth     any `json:"line-width,omitempty"`
	LineOpacity   any `json:"line-opacity,omitempty"`
	LineBlur      any `json:"line-blur,omitempty"`
	LineDasharray any `json:"line-dasharray,omitempty"`
	LineGapWidth  any `json:"line-gap-width,omitempty"`
	LineOffset    any `json:"line-offset,omitempty"`
	LineGradient  any `json:"line-gradient,omitempty"`
	LinePattern   any `json:"line-pattern,omitempty"`

	CircleColor         any `json:"circle-color,omitempty"`
	CircleRadius        any `json:"circle-radius,omitempty"`
	CircleOpacity       any `json:"circle-opacity,omitempty"`
	CircleBlur          any `json:"circle-blur,omitempty"`
	CircleStrokeColor   any `json:"circle-stroke-color,omitempty"`
	CircleStrokeWidth   any `json:"circle-stroke-width,omitempty"`
	CircleStrokeOpacity any `json:"circle-stroke-opacity,omitempty"`

	IconColor     any `json:"icon-color,omitempty"`
	IconOpacity   any `json:"icon-opacity,omitempty"`
	IconHaloColor any `json:"icon-halo-color,omitempty"`
	IconHaloWidth any `json:"icon-halo-width,omitempty"`

	TextColor     any `json:"text-color,omitempty"`
	TextOpacity   any `json:"text-opacity,omitempty"`
	TextHaloColor any `json:"text-halo-color,omitempty"`
	TextHaloWidth any `json:"text-halo-width,omitempty"`
	TextHaloBlur  any `json:"text-halo-blur,omitempty"`

	RasterOpacity       any `json:"raster-opacity,omitempty"`
	RasterBrightnessMin any `json:"raster-brightness-min,omitempty"`
	RasterBrightnessMax any `json:"raster-brightness-max,omitempty"`
	RasterSaturation    any `json:"raster-saturation,omitempty"`
	RasterContrast      any `json:"raster-contrast,omitempty"`
	RasterHueRotate     any `json:"raster-hue-rotate,omitempty"`
	RasterFadeDuration  any `json:"raster-fade-duration,omitempty"`

	RasterParticleSpeedFactor any `json:"raster-particle-speed-factor,omitempty"`
	RasterParticleCount       any `json:"raster-particle-count,omitempty"`
	RasterParticleColor       any `json:"raster-particle-color,omitempty"`

	FillExtrusionColor   any `json:"fill-extrusion-color,omitempty"`
	FillExtrusionHeight  any `json:"fill-extrusion-height,omitempty"`
	FillExtrusionBase    any `json:"fill-extrusion-base,omitempty"`
	FillExtrusionOpacity any `json:"fill-extrusion-opacity,omitempty"`

	HeatmapRadius    any `json:"heatmap-radius,omitempty"`
	HeatmapWeight    any `json:"heatmap-weight,omitempty"`
	HeatmapIntensity any `json:"heatmap-intensity,omitempty"`
	HeatmapColor     any `json:"heatmap-color,omitempty"`
	HeatmapOpacity   any `json:"heatmap-opacity,omitempty"`

	HillshadeExaggeration          any `json:"hillshade-exaggeration,omitempty"`
	HillshadeShadowColor           any `json:"hillshade-shadow-color,omitempty"`
	HillshadeHighlightColor        any `json:"hillshade-highlight-color,omitempty"`
	HillshadeAccentColor           any `json:"hillshade-accent-color,omitempty"`
	HillshadeIlluminationDirection any `json:"hillshade-illumination-direction,omitempty"`

	SkyType                   any `json:"sky-type,omitempty"`
	SkyAtmosphereSun          any `json:"sky-atmosphere-sun,omitempty"`
	SkyAtmosphereSunIntensity any `json:"sky-atmosphere-sun-intensity,omitempty"`
	SkyOpacity                any `json:"sky-opacity,omitempty"`

	ModelOpacity any `json:"model-opacity,omitempty"`
	ModelScale   any `json:"model-scale,omitempty"`
	ModelColor   any `json:"model-color,omitempty"`
}
