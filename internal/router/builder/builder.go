package builder

import (
	"fmt"
	"strings"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router/rules"
	"crm-intent-router/internal/router/slot"

	"github.com/google/uuid"
)

// Builder assembles tool arguments from extracted slots.
type Builder struct {
	x        *slot.Extractor
	defaults rules.Defaults
	ns       uuid.UUID
}

// New creates a Builder.
func New(x *slot.Extractor, defaults rules.Defaults) *Builder {
	return &Builder{
		x:        x,
		defaults: defaults,
		ns:       uuid.NewSHA1(uuid.NameSpaceDNS, []byte(correlationNS)),
	}
}

// Build returns the argument map for tool. Absent optional slots are omitted.
func (b *Builder) Build(tool model.Tool, text string) (model.Args, error) {
	switch tool {
	case model.ToolOpenPipeAnalyze:
		return b.openPipe(text)
	case model.ToolOpenPipeNegative:
		return b.openPipeNegative(text)
	case model.ToolKpiAnalyze:
		return b.kpi(text)
	case model.ToolFuturePipeline:
		return b.futurePipeline(text)
	case model.ToolContentSearch:
		return b.contentSearch(text)
	case model.ToolSmeSearch:
		return b.smeSearch(text)
	case model.ToolWorkflow:
		return b.workflow(text), nil
	default:
		return nil, &model.RoutingError{
			Kind:    model.KindClassificationFailure,
			Message: MsgUnrecognized,
		}
	}
}

func (b *Builder) openPipe(text string) (model.Args, error) {
	args, err := b.pipeBase(text, purposeOpenPipe)
	if err != nil {
		return nil, err
	}
	args[model.ArgLimitN] = b.x.Limit(text).OrElse(b.defaults.Limit)
	setInt(args, model.ArgMinStage, b.x.MinStage(text))
	setString(args, model.ArgProductListCsv, b.x.ProductList(text))
	return args, nil
}

func (b *Builder) openPipeNegative(text string) (model.Args, error) {
	args, err := b.pipeBase(text, purposeOpenPipe)
	if err != nil {
		return nil, err
	}
	args[model.ArgLimitN] = b.x.Limit(text).OrElse(b.defaults.Limit)
	setInt(args, model.ArgMinStage, b.x.MinStage(text))
	if excluded := b.x.ExcludedProducts(text); len(excluded) > 0 {
		args[model.ArgExcludeProducts] = strings.Join(excluded, ",")
	}
	args[model.ArgNegativeIntent] = true
	args[model.ArgCorrelationID] = b.correlationID(text)
	return args, nil
}

func (b *Builder) kpi(text string) (model.Args, error) {
	return b.pipeBase(text, purposeKPI)
}

func (b *Builder) futurePipeline(text string) (model.Args, error) {
	args, err := b.pipeBase(text, purposeFuture)
	if err != nil {
		return nil, err
	}
	setString(args, model.ArgOpportunityType, b.x.OpportunityType(text))
	setString(args, model.ArgSegment, b.x.Segment(text))
	setString(args, model.ArgProduct, b.x.Product(text))
	setInt(args, model.ArgLimit, b.x.Limit(text))
	return args, nil
}

// pipeBase fills the slots shared by every OU-scoped tool.
func (b *Builder) pipeBase(text, purpose string) (model.Args, error) {
	ou, ok := b.x.OperatingUnit(text).Get()
	if !ok {
		return nil, &model.RoutingError{
			Kind:    model.KindMissingRequiredSlot,
			Field:   model.ArgOUName,
			Message: fmt.Sprintf(MsgMissingOUFmt, purpose),
		}
	}
	args := model.Args{
		model.ArgOUName:    ou,
		model.ArgTimeFrame: b.x.TimeFrame(text).OrElse(b.defaults.TimeFrame),
	}
	setString(args, model.ArgCountry, b.x.Country(text))
	return args, nil
}

func (b *Builder) contentSearch(text string) (model.Args, error) {
	topic, ok := b.x.Topic(text).Get()
	if !ok {
		return nil, &model.RoutingError{
			Kind:    model.KindMissingRequiredSlot,
			Field:   model.ArgTopic,
			Message: MsgMissingTopic,
		}
	}
	return model.Args{
		model.ArgTopic:  topic,
		model.ArgSource: b.x.Source(text),
	}, nil
}

func (b *Builder) smeSearch(text string) (model.Args, error) {
	args := model.Args{}
	setString(args, model.ArgRegion, b.x.Region(text))
	setString(args, model.ArgExpertise, b.x.Expertise(text))
	if len(args) == 0 {
		return nil, &model.RoutingError{
			Kind:    model.KindMissingRequiredSlot,
			Field:   model.ArgRegion,
			Message: MsgMissingSME,
		}
	}
	return args, nil
}

func (b *Builder) workflow(text string) model.Args {
	return model.Args{
		model.ArgProcess: b.defaults.WorkflowProcess,
		model.ArgContext: text,
	}
}

// correlationID is derived from the utterance so repeated calls agree.
func (b *Builder) correlationID(text string) string {
	return correlationPrefix + uuid.NewSHA1(b.ns, []byte(text)).String()
}

func setString(args model.Args, key string, v slot.Optional[string]) {
	if s, ok := v.Get(); ok {
		args[key] = s
	}
}

func setInt(args model.Args, key string, v slot.Optional[int]) {
	if n, ok := v.Get(); ok {
		args[key] = n
	}
}
