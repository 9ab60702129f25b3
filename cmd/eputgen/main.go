// eputgen parses a device descriptor document and exports the binary
// blobs, tag image and JSON export a device or provisioning tool needs.
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/eput-tools/eput.go/blob"
	"github.com/eput-tools/eput.go/descriptor"
	"github.com/eput-tools/eput.go/logger"
)

type options struct {
	generateROM  bool
	hashName     string
	languageSets []string
	compress     bool
	tagSize      int
	logLevel     string

	inputPath  string
	outputPath string
	name       string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	cfg := logger.DefaultCfg
	cfg.Level = opts.logLevel
	log, err := logger.NewRootLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(opts, log); err != nil {
		log.Fatalf("export failed: %s", err)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}

	flags := flag.NewFlagSet("eputgen", flag.ContinueOnError)
	flags.BoolVar(&opts.generateROM, "rom", false, "generate a ROM blob instead of the standard exports")
	flags.StringVar(&opts.hashName, "hash", "md5", "hash function for ROM blob descriptors; one of md5, sha1, sha256, crc32, xxh64")
	flags.StringArrayVar(&opts.languageSets, "lang", nil, "languages to include in one metadata set, comma separated; repeatable")
	noCompress := flags.Bool("no-compress", false, "do not compress metadata with the deflate algorithm")
	flags.IntVar(&opts.tagSize, "tag-size", -1, "memory size of the used NFC tag; warns when the exports do not fit")
	flags.StringVar(&opts.logLevel, "log-level", "info", "minimum log level")
	flag.Usage = flags.PrintDefaults

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() != 3 {
		return nil, errors.Errorf("expected 3 arguments (descriptor, output directory, name), got %d", flags.NArg())
	}

	opts.compress = !*noCompress
	opts.inputPath = flags.Arg(0)
	opts.outputPath = flags.Arg(1)
	opts.name = flags.Arg(2)

	return opts, nil
}

func run(opts *options, log *logger.Logger) error {
	profile, err := descriptor.Load(opts.inputPath)
	if err != nil {
		return err
	}
	log.Infof("loaded descriptor for %q with %d properties", profile.Device.Name, len(profile.Properties))

	if opts.generateROM {
		return exportROM(profile, opts, log)
	}

	return exportAll(profile, opts, log)
}

// jsonExport mirrors the layout consumed by downstream tooling.
type jsonExport struct {
	Metadata struct {
		Compressed bool   `json:"compressed"`
		DeviceID   string `json:"device_id"`
		Payload    string `json:"payload"`
	} `json:"metadata"`
	Data struct {
		Size    int    `json:"size"`
		Payload string `json:"payload"`
	} `json:"data"`
}

func exportAll(profile *descriptor.Profile, opts *options, log *logger.Logger) error {
	data, err := blob.GenerateData(profile)
	if err != nil {
		return err
	}
	metadata, err := blob.GenerateMetadata(profile, opts.compress)
	if err != nil {
		return err
	}
	if !opts.compress {
		log.Warn("compression disabled, tag images carry the 'zip=0' argument in the metadata record type")
	}
	checkTagSize(len(data)+len(metadata), opts.tagSize, log)

	image, err := blob.BuildTagImage(data, metadata, opts.compress)
	if err != nil {
		return err
	}

	export := &jsonExport{}
	export.Metadata.Compressed = opts.compress
	export.Metadata.DeviceID = base64.URLEncoding.EncodeToString(profile.Device.PackedID())
	export.Metadata.Payload = base64.URLEncoding.EncodeToString(metadata)
	export.Data.Size = profile.DataSize() + blob.LastWrittenSize
	export.Data.Payload = base64.URLEncoding.EncodeToString(data)
	exportJSON, err := json.Marshal(export)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON export")
	}

	files := map[string][]byte{
		opts.name + "_data.bin":    data,
		opts.name + "_meta.bin":    metadata,
		opts.name + "_image.bin":   image,
		opts.name + "_export.json": exportJSON,
	}
	for name, content := range files {
		path := filepath.Join(opts.outputPath, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		log.Infof("wrote %s (%d bytes)", path, len(content))
	}

	return nil
}

func exportROM(profile *descriptor.Profile, opts *options, log *logger.Logger) error {
	newHash, err := blob.NewHash(opts.hashName)
	if err != nil {
		return err
	}

	data, err := blob.GenerateData(profile)
	if err != nil {
		return err
	}
	metadataSets, err := buildMetadataSets(profile, opts.languageSets, opts.compress)
	if err != nil {
		return err
	}

	largestSet := 0
	for _, set := range metadataSets {
		if len(set) > largestSet {
			largestSet = len(set)
		}
	}
	checkTagSize(len(data)+largestSet, opts.tagSize, log)

	rom, err := blob.ExportROM(data, metadataSets, newHash)
	if err != nil {
		return err
	}

	path := filepath.Join(opts.outputPath, "rom_blob.bin")
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	log.Infof("wrote %s (%d bytes, %d metadata sets)", path, len(rom), len(metadataSets))

	return nil
}

// buildMetadataSets generates one metadata blob per requested language
// set, or a single blob carrying all translations when no sets are
// requested.
func buildMetadataSets(profile *descriptor.Profile, languageSets []string, compress bool) ([][]byte, error) {
	if len(languageSets) == 0 {
		metadata, err := blob.GenerateMetadata(profile, compress)
		if err != nil {
			return nil, err
		}

		return [][]byte{metadata}, nil
	}

	if len(profile.Translations) == 0 {
		return nil, errors.New("language sets were requested, but the descriptor holds no translation data")
	}
	byLanguage := make(map[string]descriptor.Translation, len(profile.Translations))
	for _, translation := range profile.Translations {
		byLanguage[translation.Language] = translation
	}

	metadataSets := make([][]byte, 0, len(languageSets))
	for _, set := range languageSets {
		filtered := *profile
		filtered.Translations = nil
		for _, language := range strings.Split(set, ",") {
			if translation, exists := byLanguage[strings.TrimSpace(language)]; exists {
				filtered.Translations = append(filtered.Translations, translation)
			}
		}

		metadata, err := blob.GenerateMetadata(&filtered, compress)
		if err != nil {
			return nil, err
		}
		metadataSets = append(metadataSets, metadata)
	}

	return metadataSets, nil
}

func checkTagSize(payloadSize, tagSize int, log *logger.Logger) {
	if !blob.FitsTag(payloadSize, tagSize) {
		log.Warnf("combined size of the largest images exceeds %d bytes, ensure the tag has enough memory", tagSize)
	}
}
