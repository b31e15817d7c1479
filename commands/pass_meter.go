package commands

type PassMeterCommand struct {
	Check   CheckCommand   `command:"check" description:"Evaluate the strength of a single password"`
	Audit   AuditCommand   `command:"audit" description:"Audit a list of passwords from a file or STDIN"`
	Update  UpdateCommand  `command:"update" description:"Update pass-meter to the latest version"`
	Version VersionCommand `command:"version" description:"Displays pass-meter version" alias:"V"`
}

var PassMeter PassMeterCommand
