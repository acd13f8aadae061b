package entities

import "github.com/ts3go/ts3plugin/internal/codegen/descriptor"

// Enums returns the value enums the host reports as raw integer codes. The
// codes must match the host exactly; ParseX rejects anything else.
func Enums() []descriptor.EnumDef {
	return []descriptor.EnumDef{
		descriptor.NewEnum("Codec").
			Doc("Codec is the voice codec of a channel.").
			Variant("SpeexNarrowband", 0, "").
			Variant("SpeexWideband", 1, "").
			Variant("SpeexUltrawideband", 2, "").
			Variant("CeltMono", 3, "").
			Variant("OpusVoice", 4, "").
			Variant("OpusMusic", 5, "").
			Finalize(),
		descriptor.NewEnum("CodecEncryptionMode").
			Doc("CodecEncryptionMode controls whether voice data is encrypted.").
			Variant("PerChannel", 0, "CodecEncryptionModePerChannel leaves the choice to each channel.").
			Variant("ForcedOff", 1, "").
			Variant("ForcedOn", 2, "").
			Finalize(),
		descriptor.NewEnum("HostMessageMode").
			Doc("HostMessageMode is how the server host message is shown.").
			Variant("None", 0, "").
			Variant("Log", 1, "").
			Variant("Modal", 2, "").
			Variant("ModalQuit", 3, "HostMessageModeModalQuit shows the message and disconnects.").
			Finalize(),
		descriptor.NewEnum("HostBannerMode").
			Doc("HostBannerMode is how the server banner is scaled.").
			Variant("NoAdjust", 0, "").
			Variant("IgnoreAspect", 1, "").
			Variant("KeepAspect", 2, "").
			Finalize(),
		descriptor.NewEnum("TalkStatus").
			Doc("TalkStatus tells whether a client is currently talking.").
			Variant("NotTalking", 0, "").
			Variant("Talking", 1, "").
			Variant("TalkingWhileDisabled", 2, "TalkStatusTalkingWhileDisabled is reported while the input is deactivated.").
			Finalize(),
		descriptor.NewEnum("MuteInputStatus").
			Variant("None", 0, "").
			Variant("Muted", 1, "").
			Finalize(),
		descriptor.NewEnum("MuteOutputStatus").
			Variant("None", 0, "").
			Variant("Muted", 1, "").
			Finalize(),
		descriptor.NewEnum("HardwareInputStatus").
			Variant("Disabled", 0, "").
			Variant("Enabled", 1, "").
			Finalize(),
		descriptor.NewEnum("HardwareOutputStatus").
			Variant("Disabled", 0, "").
			Variant("Enabled", 1, "").
			Finalize(),
		descriptor.NewEnum("InputDeactivationStatus").
			Variant("Active", 0, "").
			Variant("Deactivated", 1, "").
			Finalize(),
		descriptor.NewEnum("AwayStatus").
			Variant("None", 0, "").
			Variant("Away", 1, "").
			Finalize(),
	}
}

// enumTypes lists every enum as a reinterpretable type.
func enumTypes() []descriptor.Type {
	var out []descriptor.Type
	for _, e := range Enums() {
		out = append(out, e.Type())
	}
	return out
}
