package constant

// Event type codes
const (
	QuoteFinalizedEventType = "COTIZACION_FINALIZADA"
)

// Notification type codes
const (
	NotificationQuoteFinalized = "QUOTE_FINALIZED"
)

// Canned assistant responses. The assistant composes, it does not generate:
// all user-facing text comes from this fixed set plus catalog data.
const (
	MsgGreeting            = "Hola, ¿en qué puedo ayudarte? Estos son nuestros servicios:"
	MsgServiceDetected     = "Tenemos esto disponible en %s:"
	MsgDidYouMean          = "No encontré coincidencias exactas. ¿Quisiste decir \"%s\"?"
	MsgGenericFallback     = "No logré entender tu mensaje. Estos son nuestros servicios disponibles:"
	MsgSelectionAdded      = "Agregado a tu cotización. Llevas %d artículo(s)."
	MsgAskDuration         = "¿Por cuántos días necesitas el alquiler?"
	MsgQuotePreview        = "Tu cotización por %d día(s):"
	MsgIntentionOptions    = "Estas son las opciones que coinciden con tu solicitud:"
	MsgIntentionNoMatches  = "No encontré opciones para eso. Estos son nuestros servicios:"
	MsgQuoteCleared        = "Tu cotización fue reiniciada. ¿Empezamos de nuevo?"
	MsgQuoteFinalized      = "¡Listo! Tu cotización por %.2f quedó registrada. Te contactaremos pronto."
	MsgNothingToFinalize   = "Aún no tienes artículos en tu cotización. Elige algo del catálogo primero."
	MsgDurationSaved       = "Perfecto, %d día(s). ¿Algo más para tu cotización?"
	ActionLabelViewService = "Ver opciones de %s"
)
